// Package field resolves the dynamic shapes Jira's REST API uses for
// rich-text field values.
//
// Incoming description and comment fields arrive as one of three
// variants: absent, a plain string, or an ADF document. The variant is
// resolved exactly once here; downstream code receives either flat text
// or a value already known to be one concrete variant. Outgoing
// comments are encoded as either a raw wiki string (legacy endpoint) or
// an ADF document (modern endpoint).
package field

import (
	"encoding/json"

	"github.com/issuetext/issuetext/adf"
	"github.com/issuetext/issuetext/converter"
)

// Kind tags the resolved variant of an incoming field value.
type Kind int

const (
	KindAbsent Kind = iota
	KindText
	KindDocument
)

// Value is an incoming field value with its variant resolved.
type Value struct {
	Kind Kind
	Text string
	Doc  adf.Doc
}

// Resolve inspects a raw field value and tags its variant. The REST
// collaborator is not trusted to be reliable in shape: anything
// unrecognized or unparseable resolves to the absent variant so that
// flattening degrades to the sentinel.
func Resolve(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Value{Kind: KindAbsent}
	case string:
		return Value{Kind: KindText, Text: v}
	case adf.Doc:
		return Value{Kind: KindDocument, Doc: v}
	case *adf.Doc:
		if v == nil {
			return Value{Kind: KindAbsent}
		}
		return Value{Kind: KindDocument, Doc: *v}
	case json.RawMessage:
		return resolveJSON(v)
	case []byte:
		return resolveJSON(v)
	case map[string]interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return Value{Kind: KindAbsent}
		}
		return resolveJSON(data)
	default:
		return Value{Kind: KindAbsent}
	}
}

func resolveJSON(data []byte) Value {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		return Value{Kind: KindText, Text: text}
	}
	var doc adf.Doc
	if err := json.Unmarshal(data, &doc); err == nil && doc.Type == adf.KindDoc {
		return Value{Kind: KindDocument, Doc: doc}
	}
	return Value{Kind: KindAbsent}
}

// Flatten resolves raw and renders it to flat display text with conv.
// It never fails; absent and malformed values yield the sentinel.
func Flatten(raw interface{}, conv *converter.Converter) string {
	value := Resolve(raw)
	switch value.Kind {
	case KindText:
		return conv.ConvertText(value.Text)
	case KindDocument:
		return conv.Convert(value.Doc).Text
	default:
		return conv.Sentinel()
	}
}
