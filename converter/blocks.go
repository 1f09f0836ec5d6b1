package converter

import (
	"strings"

	"github.com/issuetext/issuetext/adf"
)

// renderParagraph wraps the concatenated children in exactly one
// leading and one trailing newline.
func (s *state) renderParagraph(node adf.Node) string {
	return "\n" + s.renderChildren(node) + "\n"
}

// renderHeading emits "\n" + "#"*level + " " + content + "\n". The level
// defaults to 1 when the attribute is absent or not a whole number;
// otherwise it passes through as given, without clamping to 1-6.
func (s *state) renderHeading(node adf.Node) string {
	level := node.GetIntAttr("level", 1)
	if level < 0 {
		level = 0
	}
	return "\n" + strings.Repeat("#", level) + " " + s.renderChildren(node) + "\n"
}

// renderCodeBlock fences the concatenated children, with no formatting
// applied inside the fence.
func (s *state) renderCodeBlock(node adf.Node) string {
	return "\n```\n" + s.renderChildren(node) + "\n```\n"
}

func (s *state) renderBlockquote(node adf.Node) string {
	return "\n> " + s.renderChildren(node) + "\n"
}
