package converter

import "github.com/issuetext/issuetext/adf"

func (s *state) renderMention(node adf.Node) string {
	return "@" + node.GetStringAttr("text", s.config.MentionFallback)
}

// renderLink emits "[text](href)". The visible text is the rendered
// content when present, otherwise the href itself; a missing href
// falls back to "#" in both positions.
func (s *state) renderLink(node adf.Node) string {
	href := node.GetStringAttr("href", "")
	if href == "" {
		href = "#"
	}
	visible := href
	if len(node.Content) > 0 {
		visible = s.renderChildren(node)
	}
	return "[" + visible + "](" + href + ")"
}
