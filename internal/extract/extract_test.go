package extract

import (
	"strings"
	"testing"
)

func TestExtract_FunctionForm(t *testing.T) {
	source := "function Foo() { const x = 1; if (x) { return x; } }"

	region := New().Extract(source, "Foo")

	want := " const x = 1; if (x) { return x; } "
	if region.Body != want {
		t.Errorf("Body = %q, want %q", region.Body, want)
	}
	if region.DeclarationName != "Foo" {
		t.Errorf("DeclarationName = %q, want %q", region.DeclarationName, "Foo")
	}
}

func TestExtract_ArrowForm(t *testing.T) {
	source := "const Button = () => { return null; }"

	region := New().Extract(source, "Button")

	if region.Body != " return null; " {
		t.Errorf("Body = %q, want %q", region.Body, " return null; ")
	}
}

func TestExtract_MultiLineSignature(t *testing.T) {
	source := `const Counter = (
	props: CounterProps,
) => {
	const [count, setCount] = useState(0);
	return count;
}`

	region := New().Extract(source, "Counter")

	if !strings.Contains(region.Body, "useState(0)") {
		t.Errorf("expected body to contain useState call, got %q", region.Body)
	}
	if strings.Contains(region.Body, "CounterProps") {
		t.Errorf("body should start after the signature, got %q", region.Body)
	}
}

func TestExtract_TypeAnnotatedConst(t *testing.T) {
	source := "const Panel: React.FC<PanelProps> = (props) => { return props.children; }"

	region := New().Extract(source, "Panel")

	if region.Body != " return props.children; " {
		t.Errorf("Body = %q", region.Body)
	}
}

func TestExtract_NestedBracesIncluded(t *testing.T) {
	source := `function Outer() {
	function Inner() { return 1; }
	const map = { a: { b: 2 } };
	return Inner() + map.a.b;
}`

	region := New().Extract(source, "Outer")

	for _, fragment := range []string{"function Inner() { return 1; }", "{ a: { b: 2 } }"} {
		if !strings.Contains(region.Body, fragment) {
			t.Errorf("expected body to contain %q, got %q", fragment, region.Body)
		}
	}
	if strings.Count(region.Body, "{") != strings.Count(region.Body, "}") {
		t.Errorf("body is not brace balanced: %q", region.Body)
	}
}

func TestExtract_Misses(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
	}{
		{"declaration not present", "function Foo() { return 1; }", "Bar"},
		{"empty source", "", "Foo"},
		{"empty declaration name", "function Foo() { return 1; }", ""},
		{"whitespace only", "   \n\t  ", "Foo"},
		{"unbalanced braces", "function Foo() { if (true) { return 1; ", "Foo"},
		{"header without body", "function Foo()", "Foo"},
		{"partial identifier collision", "function Foo2() { return 2; }", "Foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := New().Extract(tt.source, tt.target)
			if region.Body != "" {
				t.Errorf("expected empty body, got %q", region.Body)
			}
			if region.Found() {
				t.Error("miss must not report as found")
			}
		})
	}
}

func TestExtract_CaseInsensitiveByDefault(t *testing.T) {
	source := "const counter = () => { return 0; }"

	region := New().Extract(source, "Counter")
	if region.Body != " return 0; " {
		t.Errorf("case-insensitive extract failed, got %q", region.Body)
	}

	strict := &BraceExtractor{CaseInsensitive: false}
	if got := strict.Extract(source, "Counter"); got.Body != "" {
		t.Errorf("case-sensitive extract should miss, got %q", got.Body)
	}
}

func TestExtract_FirstMatchWins(t *testing.T) {
	source := `const Button = () => { return "first"; }
const Button = () => { return "second"; }`

	region := New().Extract(source, "Button")

	if !strings.Contains(region.Body, "first") {
		t.Errorf("expected first declaration's body, got %q", region.Body)
	}
}

func TestExtract_GenericFunction(t *testing.T) {
	source := "function identity<T extends object>(value: T) { return value; }"

	region := New().Extract(source, "identity")

	if region.Body != " return value; " {
		t.Errorf("Body = %q", region.Body)
	}
}

func TestExtract_NoPanicOnPathologicalInput(t *testing.T) {
	inputs := []string{
		strings.Repeat("{", 10000),
		strings.Repeat("}", 10000),
		"const X = " + strings.Repeat("{}", 5000),
		"function Foo() {" + strings.Repeat("}{", 5000),
	}

	for _, src := range inputs {
		// Must return, not panic.
		_ = New().Extract(src, "Foo")
		_ = New().Extract(src, "X")
	}
}
