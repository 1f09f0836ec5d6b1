// Package wikiconverter encodes the comment generator's wiki-style text
// into ADF documents.
//
// Only the generator's own dialect is recognized: ":robot:" headers,
// "h4." headings, "* " bullet items, and inline "{{...}}" code spans.
// This is intentionally not a general wiki-markup grammar. Encoding is
// total: any input yields a well-formed, non-empty document.
package wikiconverter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/issuetext/issuetext/adf"
	"github.com/issuetext/issuetext/converter"
)

const (
	// RobotMarker prefixes the generator's analysis header line.
	RobotMarker = ":robot:"
	// RobotGlyph replaces RobotMarker in encoded output.
	RobotGlyph = "\U0001F916"

	headingPrefix = "h4."
	bulletPrefix  = "* "

	// fallbackText fills the single paragraph emitted when the input
	// produces no content nodes; the destination rejects empty documents.
	fallbackText = "No content"
)

// codeItemPattern matches list items of the form "{{path}}: description".
var codeItemPattern = regexp.MustCompile(`^\{\{(.+?)\}\}: (.*)$`)

// Result holds the encoded document and any non-fatal warnings.
type Result struct {
	Doc      adf.Doc             `json:"doc"`
	Warnings []converter.Warning `json:"warnings,omitempty"`
}

// scanState is the line classifier's state: either between blocks or
// accumulating consecutive bullet items into one pending list.
type scanState int

const (
	stateDefault scanState = iota
	stateInList
)

type scanner struct {
	state    scanState
	pending  []adf.Node // listItem nodes awaiting flush
	content  []adf.Node
	warnings []converter.Warning
}

// Convert encodes wiki-style text as an ADF document. The returned
// document always has at least one content node.
func Convert(text string) Result {
	s := &scanner{}
	for _, line := range strings.Split(text, "\n") {
		// Blank lines separate blocks and emit nothing. They are
		// consumed before classification, so a list interrupted only
		// by blank lines still coalesces into one bulletList.
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.scanLine(line)
	}
	s.flush()

	if len(s.content) == 0 {
		s.content = []adf.Node{adf.NewParagraph(adf.NewText(fallbackText))}
	}
	return Result{
		Doc:      adf.NewDoc(s.content...),
		Warnings: s.warnings,
	}
}

// scanLine classifies one non-blank line, first match wins.
func (s *scanner) scanLine(line string) {
	switch {
	case strings.HasPrefix(line, RobotMarker):
		rest := strings.TrimPrefix(line, RobotMarker)
		s.emit(adf.NewHeading(3, adf.NewText(RobotGlyph+rest)))
	case strings.HasPrefix(line, headingPrefix):
		rest := strings.TrimSpace(strings.TrimPrefix(line, headingPrefix))
		s.emit(adf.NewHeading(4, adf.NewText(rest)))
	case strings.HasPrefix(line, bulletPrefix):
		item := strings.TrimPrefix(line, bulletPrefix)
		s.push(adf.NewListItem(s.itemSpans(item)...))
	default:
		s.emit(adf.NewParagraph(s.spans(line)...))
	}
}

// emit appends a non-list block, flushing any pending list first.
func (s *scanner) emit(node adf.Node) {
	s.flush()
	s.content = append(s.content, node)
}

// push accumulates a list item onto the pending list.
func (s *scanner) push(item adf.Node) {
	s.pending = append(s.pending, item)
	s.state = stateInList
}

// flush closes a pending list as a single bulletList node, preserving
// item order, and returns to the default state.
func (s *scanner) flush() {
	if s.state != stateInList {
		return
	}
	s.content = append(s.content, adf.NewBulletList(s.pending...))
	s.pending = nil
	s.state = stateDefault
}

// itemSpans splits a "{{path}}: description" item into a code span plus
// plain text; any other item goes through the inline-span formatter.
func (s *scanner) itemSpans(item string) []adf.Node {
	if match := codeItemPattern.FindStringSubmatch(item); match != nil {
		return []adf.Node{
			adf.NewCodeText(match[1]),
			adf.NewText(": " + match[2]),
		}
	}
	return s.spans(item)
}

func (s *scanner) spans(line string) []adf.Node {
	if open := strings.LastIndex(line, spanOpen); open >= 0 && !strings.Contains(line[open:], spanClose) {
		s.warnings = append(s.warnings, converter.Warning{
			Type:    converter.WarningUnterminatedSpan,
			Message: fmt.Sprintf("unterminated %s span treated as plain text", spanOpen),
		})
	}
	return FormatInlineSpans(line)
}
