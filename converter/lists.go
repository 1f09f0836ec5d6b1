package converter

import (
	"fmt"
	"strings"

	"github.com/issuetext/issuetext/adf"
)

// renderList emits "  • " + item for every child, with no separator
// between items and exactly one leading newline before the whole list.
// Consumers parse this spacing positionally, so it is a byte-for-byte
// contract; do not normalize it.
func (s *state) renderList(node adf.Node) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, item := range node.Content {
		body := ""
		if item.Type == adf.KindListItem {
			body = s.renderChildren(item)
		} else {
			// List containers should hold only listItem nodes, but the
			// tree is not trusted; render whatever is there.
			s.addWarning(WarningInvalidListChild, string(item.Type),
				fmt.Sprintf("%s contains %q instead of listItem", node.Type, item.Type))
			body = s.render(item)
		}
		sb.WriteString("  • ")
		sb.WriteString(body)
	}
	return sb.String()
}
