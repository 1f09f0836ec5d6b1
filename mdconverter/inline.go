package mdconverter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/issuetext/issuetext/adf"
)

func (s *state) convertInlineChildren(parent ast.Node, marks []adf.Mark) []adf.Node {
	var content []adf.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		content = append(content, s.convertInlineNode(child, marks)...)
	}
	return content
}

func (s *state) convertInlineNode(node ast.Node, marks []adf.Mark) []adf.Node {
	switch typed := node.(type) {
	case *ast.Text:
		var content []adf.Node
		if textValue := string(typed.Value(s.source)); textValue != "" {
			content = append(content, adf.NewMarkedText(textValue, marks...))
		}
		if typed.HardLineBreak() {
			content = append(content, adf.NewHardBreak())
		} else if typed.SoftLineBreak() {
			content = append(content, adf.NewMarkedText(" ", marks...))
		}
		return content

	case *ast.String:
		return []adf.Node{adf.NewMarkedText(string(typed.Value), marks...)}

	case *ast.Emphasis:
		markType := "em"
		if typed.Level >= 2 {
			markType = "strong"
		}
		return s.convertInlineChildren(typed, pushMark(marks, adf.Mark{Type: markType}))

	case *extast.Strikethrough:
		return s.convertInlineChildren(typed, pushMark(marks, adf.Mark{Type: "strike"}))

	case *ast.CodeSpan:
		return s.convertInlineChildren(typed, pushMark(marks, adf.Mark{Type: adf.MarkCode}))

	case *ast.Link:
		href := strings.TrimSpace(string(typed.Destination))
		if href == "" {
			return s.convertInlineChildren(typed, marks)
		}
		return s.convertInlineChildren(typed, pushMark(marks, adf.NewLinkMark(href)))

	case *ast.AutoLink:
		url := strings.TrimSpace(string(typed.URL(s.source)))
		return []adf.Node{adf.NewMarkedText(url, pushMark(marks, adf.NewLinkMark(url))...)}

	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < typed.Segments.Len(); i++ {
			segment := typed.Segments.At(i)
			sb.Write(segment.Value(s.source))
		}
		if textValue := htmlText(sb.String()); textValue != "" {
			return []adf.Node{adf.NewMarkedText(textValue, marks...)}
		}
		return nil

	case *ast.Image:
		alt := strings.TrimSpace(string(typed.Text(s.source)))
		if alt == "" {
			alt = "Image"
		}
		return []adf.Node{adf.NewMarkedText(alt, marks...)}

	default:
		if node.HasChildren() {
			return s.convertInlineChildren(node, marks)
		}
		if textValue := strings.TrimSpace(string(node.Text(s.source))); textValue != "" {
			return []adf.Node{adf.NewMarkedText(textValue, marks...)}
		}
		return nil
	}
}

// pushMark returns a fresh mark slice so sibling branches never share
// backing arrays.
func pushMark(marks []adf.Mark, mark adf.Mark) []adf.Mark {
	next := make([]adf.Mark, 0, len(marks)+1)
	next = append(next, marks...)
	return append(next, mark)
}
