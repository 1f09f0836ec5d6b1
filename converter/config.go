package converter

import (
	"fmt"
	"strings"
)

// DefaultSentinel is the placeholder emitted when a field has no usable
// content. Downstream display code shows it verbatim.
const DefaultSentinel = "No content available"

// DefaultMentionFallback names a mention whose attributes carry no text.
const DefaultMentionFallback = "user"

// Config holds decoder configuration options.
type Config struct {
	// Sentinel replaces absent or empty field values.
	Sentinel string `json:"sentinel,omitempty"`
	// MentionFallback is the name used for mentions without a text
	// attribute, rendered as "@" + MentionFallback.
	MentionFallback string `json:"mentionFallback,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.Sentinel == "" {
		c.Sentinel = DefaultSentinel
	}
	if c.MentionFallback == "" {
		c.MentionFallback = DefaultMentionFallback
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.Sentinel != "" && strings.TrimSpace(c.Sentinel) == "" {
		return fmt.Errorf("sentinel must not be blank")
	}
	if c.MentionFallback != "" && strings.TrimSpace(c.MentionFallback) == "" {
		return fmt.Errorf("mentionFallback must not be blank")
	}
	return nil
}
