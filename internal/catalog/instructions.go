package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Instructions is the parsed view of an exercise's markdown instructions:
// the title from the first level-1 heading, the level-2 section headings in
// document order, and the raw markdown for full display.
type Instructions struct {
	Title    string
	Sections []string
	Raw      string
}

// LoadInstructions reads and parses an instructions markdown file.
func LoadInstructions(path string) (*Instructions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instructions: %w", err)
	}
	return ParseInstructions(data), nil
}

// ParseInstructions extracts the title and section headings from markdown
// content by walking the goldmark AST. Content without a level-1 heading
// simply has an empty title; that is not an error.
func ParseInstructions(content []byte) *Instructions {
	instructions := &Instructions{Raw: string(content)}

	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		switch heading.Level {
		case 1:
			if instructions.Title == "" {
				instructions.Title = headingText(heading, content)
			}
		case 2:
			instructions.Sections = append(instructions.Sections, headingText(heading, content))
		}
		return ast.WalkContinue, nil
	})

	return instructions
}

// headingText collects the literal text of a heading node.
func headingText(heading *ast.Heading, source []byte) string {
	var sb strings.Builder
	for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return strings.TrimSpace(sb.String())
}
