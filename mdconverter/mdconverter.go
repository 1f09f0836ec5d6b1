// Package mdconverter encodes caller-authored Markdown comments as ADF
// documents for the modern comment endpoint.
//
// It covers the block and inline kinds the flat-text contract can
// represent: headings, paragraphs, lists, code blocks, blockquotes,
// rules, emphasis/strong/strike/code marks, and links. Raw HTML is
// reduced to its text content.
package mdconverter

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/issuetext/issuetext/adf"
	"github.com/issuetext/issuetext/converter"
)

// Converter converts Markdown to ADF documents.
type Converter struct {
	parser goldmark.Markdown
}

// Result holds the encoded document and any non-fatal warnings.
type Result struct {
	Doc      adf.Doc             `json:"doc"`
	Warnings []converter.Warning `json:"warnings,omitempty"`
}

// New creates a new markdown Converter.
func New() *Converter {
	return &Converter{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough),
		),
	}
}

type state struct {
	source   []byte
	warnings []converter.Warning
}

func (s *state) addWarning(warnType converter.WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, converter.Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}

// Convert encodes a Markdown document as ADF. Like the wiki encoder it
// is total and never returns an empty document.
func (c *Converter) Convert(markdown string) Result {
	s := &state{source: []byte(markdown)}

	root := c.parser.Parser().Parse(text.NewReader(s.source))
	content := s.convertBlockChildren(root)
	if len(content) == 0 {
		content = []adf.Node{adf.NewParagraph(adf.NewText("No content"))}
	}

	return Result{
		Doc:      adf.NewDoc(content...),
		Warnings: s.warnings,
	}
}

func (s *state) warnUnknown(nodeKind, textValue string) []adf.Node {
	if strings.TrimSpace(textValue) == "" {
		return nil
	}
	s.addWarning(
		converter.WarningUnknownNode,
		nodeKind,
		fmt.Sprintf("unsupported markdown node: %s", nodeKind),
	)
	return []adf.Node{adf.NewParagraph(adf.NewText(textValue))}
}
