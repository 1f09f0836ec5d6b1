package wikiconverter

import (
	"strings"

	"github.com/issuetext/issuetext/adf"
)

const (
	spanOpen  = "{{"
	spanClose = "}}"
)

// FormatInlineSpans splits a line of text on {{...}} delimiter pairs.
// Substrings inside the delimiters become code-marked text nodes with
// the delimiters stripped; substrings outside become plain text nodes,
// in original order. A line without delimiters (or with an unterminated
// pair) yields the remaining text as a single plain node, so the result
// is never empty.
func FormatInlineSpans(line string) []adf.Node {
	var nodes []adf.Node
	rest := line
	for {
		open := strings.Index(rest, spanOpen)
		if open < 0 {
			break
		}
		body := rest[open+len(spanOpen):]
		closing := strings.Index(body, spanClose)
		if closing < 0 {
			break
		}
		if open > 0 {
			nodes = append(nodes, adf.NewText(rest[:open]))
		}
		nodes = append(nodes, adf.NewCodeText(body[:closing]))
		rest = body[closing+len(spanClose):]
	}
	if rest != "" || len(nodes) == 0 {
		nodes = append(nodes, adf.NewText(rest))
	}
	return nodes
}
