package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterExerciseYAML = `id: counter-basics
title: Counter Basics
difficulty: 2
order: 1
instructions: counter-basics.md
checks:
  - name: Counter uses useState
    target: Counter
    required: [useState]
    forbidden: [TODO]
  - name: Counter is substantial
    target: Counter
    min_length: 40
`

const counterInstructionsMD = `# Counter Basics

Build a counter component.

## Requirements

Use the useState hook.

## Hints

Remember that setState is asynchronous.
`

func writeCatalogFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	hooksDir := filepath.Join(root, "react-hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "counter-basics.yaml"), []byte(counterExerciseYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "counter-basics.md"), []byte(counterInstructionsMD), 0644))

	typesDir := filepath.Join(root, "advanced-types")
	require.NoError(t, os.MkdirAll(typesDir, 0755))
	discriminated := `id: discriminated-unions
title: Discriminated Unions
difficulty: 3
order: 2
checks:
  - name: uses a kind discriminant
    required: ["kind"]
    any_of: ["switch", "if"]
`
	narrow := `id: narrowing
title: Type Narrowing
difficulty: 3
order: 1
checks:
  - name: uses typeof narrowing
    required: ["typeof"]
`
	require.NoError(t, os.WriteFile(filepath.Join(typesDir, "discriminated-unions.yaml"), []byte(discriminated), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(typesDir, "narrowing.yaml"), []byte(narrow), 0644))

	return root
}

func TestLoad_CatalogOrderAndLookup(t *testing.T) {
	root := writeCatalogFixture(t)

	cat, err := Load(root)
	require.NoError(t, err)

	require.Len(t, cat.Categories, 2)
	// Categories are sorted by name.
	assert.Equal(t, "advanced-types", cat.Categories[0].Name)
	assert.Equal(t, "react-hooks", cat.Categories[1].Name)

	// Exercises within a category are sorted by order.
	require.Len(t, cat.Categories[0].Exercises, 2)
	assert.Equal(t, "narrowing", cat.Categories[0].Exercises[0].ID)
	assert.Equal(t, "discriminated-unions", cat.Categories[0].Exercises[1].ID)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, []string{"narrowing", "discriminated-unions", "counter-basics"}, cat.ExerciseIDs())

	ex, ok := cat.Exercise("counter-basics")
	require.True(t, ok)
	assert.Equal(t, "Counter Basics", ex.Title)
	assert.Equal(t, "react-hooks", ex.Category)
	require.Len(t, ex.Checks, 2)
	assert.Equal(t, "Counter", ex.Checks[0].TargetDeclaration)

	_, ok = cat.Exercise("does-not-exist")
	assert.False(t, ok)
}

func TestLoad_FailsFastOnMalformedExercise(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing id",
			content: "title: No ID\nchecks:\n  - name: c\n    required: [x]\n",
			wantErr: "missing an id",
		},
		{
			name:    "no checks",
			content: "id: empty\ntitle: Empty\n",
			wantErr: "no checks",
		},
		{
			name:    "check without conditions",
			content: "id: hollow\ntitle: Hollow\nchecks:\n  - name: nothing\n",
			wantErr: "no conditions",
		},
		{
			name:    "invalid yaml",
			content: "id: [unclosed\n",
			wantErr: "failed to parse",
		},
		{
			name:    "negative min_length",
			content: "id: neg\ntitle: Neg\nchecks:\n  - name: c\n    min_length: -5\n",
			wantErr: "min_length",
		},
		{
			name:    "error without custom condition",
			content: "id: strayerr\ntitle: Stray\nchecks:\n  - name: c\n    required: [x]\n    error: nope\n",
			wantErr: "no custom condition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			dir := filepath.Join(root, "category")
			require.NoError(t, os.MkdirAll(dir, 0755))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(tt.content), 0644))

			_, err := Load(root)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingReferencedInstructions(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "react-hooks")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "id: ghost\ntitle: Ghost\ninstructions: ghost.md\nchecks:\n  - name: c\n    required: [x]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ghost.yaml"), []byte(content), 0644))

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing file")
}

func TestLoad_DuplicateExerciseID(t *testing.T) {
	root := t.TempDir()
	for _, category := range []string{"cat-a", "cat-b"} {
		dir := filepath.Join(root, category)
		require.NoError(t, os.MkdirAll(dir, 0755))
		content := "id: shared\ntitle: Shared\nchecks:\n  - name: c\n    required: [x]\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "shared.yaml"), []byte(content), 0644))
	}

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate exercise id")
}

func TestLoad_IgnoresNonExerciseFiles(t *testing.T) {
	root := writeCatalogFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# readme"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "react-hooks", "notes.txt"), []byte("notes"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".hidden"), 0755))

	cat, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())
}

func TestCompileCheck_AnyOfValidator(t *testing.T) {
	spec, err := compileCheck(checkYAML{
		Name:  "uses a hook",
		AnyOf: []string{"useCallback", "useMemo"},
	})
	require.NoError(t, err)
	require.NotNil(t, spec.CustomValidation)

	assert.True(t, spec.CustomValidation("const fn = useCallback(() => {}, [])"))
	assert.True(t, spec.CustomValidation("const v = useMemo(() => 1, [])"))
	assert.False(t, spec.CustomValidation("const v = 1"))
	assert.Contains(t, spec.CustomError, "useCallback")
}

func TestCompileCheck_MinLengthValidator(t *testing.T) {
	spec, err := compileCheck(checkYAML{Name: "substantial", MinLength: 10})
	require.NoError(t, err)
	require.NotNil(t, spec.CustomValidation)

	assert.False(t, spec.CustomValidation("short"))
	assert.False(t, spec.CustomValidation("         \n\t "))
	assert.True(t, spec.CustomValidation("long enough text"))
}

func TestCompileCheck_CustomErrorOverride(t *testing.T) {
	spec, err := compileCheck(checkYAML{
		Name:      "substantial",
		MinLength: 10,
		Error:     "write a real implementation first",
	})
	require.NoError(t, err)
	assert.Equal(t, "write a real implementation first", spec.CustomError)
}

func TestParseInstructions(t *testing.T) {
	instructions := ParseInstructions([]byte(counterInstructionsMD))

	assert.Equal(t, "Counter Basics", instructions.Title)
	assert.Equal(t, []string{"Requirements", "Hints"}, instructions.Sections)
	assert.Equal(t, counterInstructionsMD, instructions.Raw)
}

func TestParseInstructions_NoHeadings(t *testing.T) {
	instructions := ParseInstructions([]byte("just a paragraph of text"))

	assert.Empty(t, instructions.Title)
	assert.Empty(t, instructions.Sections)
}

func TestLoadInstructions_MissingFile(t *testing.T) {
	_, err := LoadInstructions(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
}
