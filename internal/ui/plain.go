package ui

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainMarkdown renders markdown as unstyled text for pipes and files.
// Inline markup is dropped, H1/H2 headings are underlined and lists keep
// their "- " bullets.
func PlainMarkdown(content string) string {
	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var b strings.Builder
	depth := 0
	afterBreak := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Heading:
			if !entering {
				return ast.WalkContinue, nil
			}
			blankLine(&b)
			title := inlineText(node, source)
			b.WriteString(title)
			b.WriteByte('\n')
			switch node.Level {
			case 1:
				b.WriteString(strings.Repeat("=", len([]rune(title))) + "\n")
			case 2:
				b.WriteString(strings.Repeat("-", len([]rune(title))) + "\n")
			}
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			if entering {
				if depth == 0 {
					blankLine(&b)
				}
			} else {
				b.WriteByte('\n')
			}

		case *ast.TextBlock:
			if !entering {
				b.WriteByte('\n')
			}

		case *ast.List:
			if entering {
				if depth == 0 {
					blankLine(&b)
				}
				depth++
			} else {
				depth--
			}

		case *ast.ListItem:
			if entering {
				b.WriteString(strings.Repeat("  ", depth-1) + "- ")
			}

		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if !entering {
				return ast.WalkContinue, nil
			}
			blankLine(&b)
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.WriteString("    ")
				b.Write(seg.Value(source))
			}
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			if !entering {
				return ast.WalkContinue, nil
			}
			value := node.Segment.Value(source)
			if afterBreak {
				value = bytes.TrimLeft(value, " ")
			}
			afterBreak = node.SoftLineBreak() || node.HardLineBreak()
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.Write(bytes.TrimRight(value, " "))
				b.WriteByte('\n')
				b.WriteString(strings.Repeat("  ", depth))
			} else {
				b.Write(value)
			}

		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// blankLine separates top-level blocks by one empty line.
func blankLine(b *strings.Builder) {
	s := b.String()
	if s == "" || strings.HasSuffix(s, "\n\n") {
		return
	}
	if !strings.HasSuffix(s, "\n") {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
