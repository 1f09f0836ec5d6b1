package mdconverter

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/issuetext/issuetext/adf"
)

func (s *state) convertBlockChildren(parent ast.Node) []adf.Node {
	var content []adf.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		content = append(content, s.convertBlockNode(child)...)
	}
	return content
}

func (s *state) convertBlockNode(node ast.Node) []adf.Node {
	switch typed := node.(type) {
	case *ast.Paragraph:
		inline := s.convertInlineChildren(typed, nil)
		if len(inline) == 0 {
			return nil
		}
		return []adf.Node{adf.NewParagraph(inline...)}

	case *ast.TextBlock:
		inline := s.convertInlineChildren(typed, nil)
		if len(inline) == 0 {
			return nil
		}
		return []adf.Node{adf.NewParagraph(inline...)}

	case *ast.Heading:
		return []adf.Node{adf.NewHeading(typed.Level, s.convertInlineChildren(typed, nil)...)}

	case *ast.Blockquote:
		return []adf.Node{adf.NewBlockquote(s.convertBlockChildren(typed)...)}

	case *ast.ThematicBreak:
		return []adf.Node{adf.NewRule()}

	case *ast.FencedCodeBlock:
		language := strings.TrimSpace(string(typed.Language(s.source)))
		return []adf.Node{adf.NewCodeBlock(language, s.blockLines(typed))}

	case *ast.CodeBlock:
		return []adf.Node{adf.NewCodeBlock("", s.blockLines(typed))}

	case *ast.List:
		return []adf.Node{s.convertListNode(typed)}

	case *ast.HTMLBlock:
		textValue := htmlText(s.blockLines(typed))
		if textValue == "" {
			return nil
		}
		return []adf.Node{adf.NewParagraph(adf.NewText(textValue))}

	default:
		return s.warnUnknown(typed.Kind().String(), strings.TrimSpace(string(node.Text(s.source))))
	}
}

func (s *state) convertListNode(node *ast.List) adf.Node {
	var items []adf.Node
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		items = append(items, adf.NewListItem(s.convertBlockChildren(item)...))
	}

	if node.IsOrdered() {
		return adf.NewOrderedList(items...)
	}
	return adf.NewBulletList(items...)
}

// blockLines joins a block node's raw source lines, without the
// trailing newline.
func (s *state) blockLines(node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(s.source))
	}
	return strings.TrimRight(sb.String(), "\n")
}
