package field

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issuetext/issuetext/adf"
	"github.com/issuetext/issuetext/converter"
)

func newTestConverter(t testing.TB) *converter.Converter {
	t.Helper()

	conv, err := converter.New(converter.Config{})
	require.NoError(t, err)

	return conv
}

func TestResolveVariants(t *testing.T) {
	doc := adf.NewDoc(adf.NewParagraph(adf.NewText("hi")))

	tests := []struct {
		name string
		raw  interface{}
		want Kind
	}{
		{name: "nil", raw: nil, want: KindAbsent},
		{name: "string", raw: "hello", want: KindText},
		{name: "doc value", raw: doc, want: KindDocument},
		{name: "doc pointer", raw: &doc, want: KindDocument},
		{name: "nil doc pointer", raw: (*adf.Doc)(nil), want: KindAbsent},
		{name: "json string", raw: json.RawMessage(`"hello"`), want: KindText},
		{name: "json document", raw: json.RawMessage(`{"type":"doc","version":1,"content":[{"type":"paragraph"}]}`), want: KindDocument},
		{name: "json null", raw: json.RawMessage(`null`), want: KindAbsent},
		{name: "json object of wrong shape", raw: json.RawMessage(`{"foo":1}`), want: KindAbsent},
		{name: "json garbage", raw: json.RawMessage(`{{{`), want: KindAbsent},
		{name: "map shape", raw: map[string]interface{}{"type": "doc", "version": 1, "content": []interface{}{}}, want: KindDocument},
		{name: "unrelated type", raw: 42, want: KindAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.raw).Kind)
		})
	}
}

func TestFlattenDispatch(t *testing.T) {
	conv := newTestConverter(t)

	assert.Equal(t, converter.DefaultSentinel, Flatten(nil, conv))
	assert.Equal(t, converter.DefaultSentinel, Flatten("   ", conv))
	assert.Equal(t, "plain", Flatten("  plain  ", conv))
	assert.Equal(t, "\nX\n", Flatten(json.RawMessage(`{"type":"doc","version":1,"content":[{"type":"paragraph","content":[{"type":"text","text":"X"}]}]}`), conv))
	assert.Equal(t, converter.DefaultSentinel, Flatten(json.RawMessage(`{"type":"doc","version":1,"content":[]}`), conv))
}

func TestFlattenIsResolvedOnce(t *testing.T) {
	// A JSON-encoded string value must flatten like the string variant,
	// not like a document.
	conv := newTestConverter(t)

	assert.Equal(t, "from the wire", Flatten(json.RawMessage(`"from the wire"`), conv))
}
