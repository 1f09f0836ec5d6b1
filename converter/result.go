package converter

// Result holds the output of a conversion.
type Result struct {
	Text     string    `json:"text"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnknownNode      WarningType = "unknown_node"
	WarningInvalidListChild WarningType = "invalid_list_child"
	WarningUnterminatedSpan WarningType = "unterminated_span"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}
