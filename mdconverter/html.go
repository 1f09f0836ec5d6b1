package mdconverter

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlText reduces an HTML fragment to its text content. ADF has no
// raw-HTML node, so tags are dropped and only the text survives.
func htmlText(fragment string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var sb strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(tokenizer.Text())
		}
	}
}
