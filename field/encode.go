package field

import (
	"encoding/json"
	"strings"

	"github.com/issuetext/issuetext/adf"
	"github.com/issuetext/issuetext/wikiconverter"
)

// AttributionPhrase is the footer the comment generator appends to its
// analysis output. Its presence marks text as generated.
const AttributionPhrase = "Generated with AI assistance"

// Endpoint selects the outgoing comment encoding. Which endpoint a
// comment targets is the caller's decision.
type Endpoint int

const (
	// EndpointAuto picks the legacy encoding for generated analysis
	// text and the modern one for everything else.
	EndpointAuto Endpoint = iota
	// EndpointLegacy sends raw wiki markup, rendered server-side.
	EndpointLegacy
	// EndpointModern sends a structured ADF document.
	EndpointModern
)

// Body is an outgoing comment payload: exactly one of Wiki or Doc is
// set. It marshals to the JSON value the target endpoint expects.
type Body struct {
	Wiki string
	Doc  *adf.Doc
}

// MarshalJSON emits either the raw wiki string or the ADF document.
func (b Body) MarshalJSON() ([]byte, error) {
	if b.Doc != nil {
		return json.Marshal(b.Doc)
	}
	return json.Marshal(b.Wiki)
}

// IsGeneratedAnalysis reports whether text carries the structural
// fingerprints of the comment generator's analysis output: a ":robot:"
// header line, an "h4."-prefixed line, or the attribution phrase.
func IsGeneratedAnalysis(text string) bool {
	if strings.Contains(text, AttributionPhrase) {
		return true
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, wikiconverter.RobotMarker) {
			return true
		}
		if strings.HasPrefix(line, "h4.") {
			return true
		}
	}
	return false
}

// Encode builds the outgoing payload for text. The legacy path passes
// the wiki markup through untouched apart from substituting the
// ":robot:" token with its glyph; the modern path encodes the text as
// an ADF document.
func Encode(text string, target Endpoint) Body {
	if target == EndpointAuto {
		if IsGeneratedAnalysis(text) {
			target = EndpointLegacy
		} else {
			target = EndpointModern
		}
	}

	if target == EndpointLegacy {
		return Body{Wiki: strings.ReplaceAll(text, wikiconverter.RobotMarker, wikiconverter.RobotGlyph)}
	}
	doc := wikiconverter.Convert(text).Doc
	return Body{Doc: &doc}
}
