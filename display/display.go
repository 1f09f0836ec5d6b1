// Package display renders flat decoder output for its two destinations:
// ANSI terminals and XML-embedded text.
package display

import (
	"strings"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	bulletColor  = color.New(color.FgYellow)
	codeColor    = color.New(color.Faint)
	quoteColor   = color.New(color.FgGreen)
)

const bulletMarker = "  • "

// Terminal colorizes flat text for terminal display. The input layout
// is the decoder's positional contract, so lines are recognized by
// their prefixes and left byte-identical apart from color codes.
// Respects color.NoColor.
func Terminal(text string) string {
	lines := strings.Split(text, "\n")
	inFence := false
	for i, line := range lines {
		switch {
		case line == "```":
			inFence = !inFence
			lines[i] = codeColor.Sprint(line)
		case inFence:
			lines[i] = codeColor.Sprint(line)
		case isHeading(line):
			lines[i] = headingColor.Sprint(line)
		case strings.HasPrefix(line, bulletMarker):
			lines[i] = strings.ReplaceAll(line, bulletMarker, bulletColor.Sprint(bulletMarker))
		case strings.HasPrefix(line, "> "):
			lines[i] = quoteColor.Sprint(line)
		case line == "---":
			lines[i] = codeColor.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}

func isHeading(line string) bool {
	trimmed := strings.TrimLeft(line, "#")
	return len(trimmed) < len(line) && strings.HasPrefix(trimmed, " ")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// XMLEscape escapes the five XML special characters, leaving newlines
// and the rest of the flat layout untouched.
func XMLEscape(text string) string {
	return xmlReplacer.Replace(text)
}
