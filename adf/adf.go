// Package adf defines the Atlassian Document Format tree: a JSON
// representation of rich text used by Jira description and comment
// fields.
package adf

import "math"

// Kind identifies an ADF node type. The set below is closed; anything
// outside it is handled by the converters' fallback arms.
type Kind string

const (
	KindDoc         Kind = "doc"
	KindText        Kind = "text"
	KindParagraph   Kind = "paragraph"
	KindHeading     Kind = "heading"
	KindHardBreak   Kind = "hardBreak"
	KindMention     Kind = "mention"
	KindEmoji       Kind = "emoji"
	KindBulletList  Kind = "bulletList"
	KindOrderedList Kind = "orderedList"
	KindListItem    Kind = "listItem"
	KindCodeBlock   Kind = "codeBlock"
	KindBlockquote  Kind = "blockquote"
	KindRule        Kind = "rule"
	KindLink        Kind = "link"
)

// MarkCode is the inline-code mark type.
const MarkCode = "code"

// MarkLink is the hyperlink mark type.
const MarkLink = "link"

// Doc represents the root document node of an ADF value. Version is
// always 1.
type Doc struct {
	Version int    `json:"version"`
	Type    Kind   `json:"type"`
	Content []Node `json:"content,omitempty"`
}

// Node represents any node in the ADF tree (e.g., paragraph, text, etc.).
type Node struct {
	Type    Kind                   `json:"type"`
	Text    string                 `json:"text,omitempty"`
	Content []Node                 `json:"content,omitempty"`
	Marks   []Mark                 `json:"marks,omitempty"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
}

// Mark represents text formatting applied to a node (e.g., code, link).
type Mark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// GetStringAttr returns the named attribute as a string, or fallback
// when it is absent, empty, or not a string.
func (n Node) GetStringAttr(key, fallback string) string {
	if n.Attrs == nil {
		return fallback
	}
	value, ok := n.Attrs[key].(string)
	if !ok || value == "" {
		return fallback
	}
	return value
}

// GetIntAttr returns the named attribute as an int when it holds a
// finite whole number, or fallback otherwise. Unmarshaled JSON numbers
// arrive as float64; constructed nodes carry plain ints.
func (n Node) GetIntAttr(key string, fallback int) int {
	if n.Attrs == nil {
		return fallback
	}
	switch value := n.Attrs[key].(type) {
	case int:
		return value
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
			return fallback
		}
		return int(value)
	default:
		return fallback
	}
}

// HasMark reports whether the node carries a mark of the given type.
func (n Node) HasMark(markType string) bool {
	for _, mark := range n.Marks {
		if mark.Type == markType {
			return true
		}
	}
	return false
}
