// Package converter flattens ADF documents into plain display text.
//
// The output is consumed positionally by terminal and XML renderers, so
// every node kind has an exact byte-level contract. Conversion is a
// total function: malformed or unrecognized input degrades to defined
// fallbacks and never returns an error.
package converter

import (
	"fmt"
	"strings"

	"github.com/issuetext/issuetext/adf"
)

// Converter renders ADF trees to flat text.
type Converter struct {
	config Config
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Converter{config: cfg}, nil
}

// Sentinel returns the configured no-content placeholder.
func (c *Converter) Sentinel() string {
	return c.config.Sentinel
}

// ConvertText handles the plain-string field variant: the trimmed text,
// or the sentinel when it is empty or whitespace-only.
func (c *Converter) ConvertText(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return c.config.Sentinel
	}
	return trimmed
}

// Convert renders an ADF document to flat text. A document without a
// usable content array yields the sentinel.
func (c *Converter) Convert(doc adf.Doc) Result {
	if len(doc.Content) == 0 {
		return Result{Text: c.config.Sentinel}
	}

	s := &state{config: c.config}
	var sb strings.Builder
	for _, node := range doc.Content {
		sb.WriteString(s.render(node))
	}
	return Result{Text: sb.String(), Warnings: s.warnings}
}

type state struct {
	config   Config
	warnings []Warning
}

func (s *state) addWarning(warnType WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}

// render dispatches on the closed node-kind set. Unrecognized kinds that
// carry content are passed through recursively so newer ADF nodes keep
// their text.
func (s *state) render(node adf.Node) string {
	switch node.Type {
	case adf.KindText:
		return node.Text
	case adf.KindParagraph:
		return s.renderParagraph(node)
	case adf.KindHeading:
		return s.renderHeading(node)
	case adf.KindHardBreak:
		return "\n"
	case adf.KindMention:
		return s.renderMention(node)
	case adf.KindEmoji:
		return node.GetStringAttr("shortName", "")
	case adf.KindBulletList, adf.KindOrderedList:
		return s.renderList(node)
	case adf.KindListItem:
		return s.renderChildren(node)
	case adf.KindCodeBlock:
		return s.renderCodeBlock(node)
	case adf.KindBlockquote:
		return s.renderBlockquote(node)
	case adf.KindRule:
		return "\n---\n"
	case adf.KindLink:
		return s.renderLink(node)
	default:
		if len(node.Content) == 0 {
			s.addWarning(WarningUnknownNode, string(node.Type),
				fmt.Sprintf("unknown node type %q dropped", node.Type))
			return ""
		}
		s.addWarning(WarningUnknownNode, string(node.Type),
			fmt.Sprintf("unknown node type %q rendered as its content", node.Type))
		return s.renderChildren(node)
	}
}

func (s *state) renderChildren(node adf.Node) string {
	var sb strings.Builder
	for _, child := range node.Content {
		sb.WriteString(s.render(child))
	}
	return sb.String()
}
