package adf

// NewDoc creates a version-1 document node wrapping the given content.
func NewDoc(content ...Node) Doc {
	return Doc{
		Version: 1,
		Type:    KindDoc,
		Content: content,
	}
}

// NewText creates a plain text node.
func NewText(text string) Node {
	return Node{
		Type: KindText,
		Text: text,
	}
}

// NewCodeText creates a text node carrying a code mark.
func NewCodeText(text string) Node {
	return Node{
		Type:  KindText,
		Text:  text,
		Marks: []Mark{{Type: MarkCode}},
	}
}

// NewMarkedText creates a text node carrying the given marks.
func NewMarkedText(text string, marks ...Mark) Node {
	return Node{
		Type:  KindText,
		Text:  text,
		Marks: marks,
	}
}

// NewParagraph creates a paragraph node.
func NewParagraph(content ...Node) Node {
	return Node{
		Type:    KindParagraph,
		Content: content,
	}
}

// NewHeading creates a heading node at the given level.
func NewHeading(level int, content ...Node) Node {
	return Node{
		Type:    KindHeading,
		Content: content,
		Attrs: map[string]interface{}{
			"level": level,
		},
	}
}

// NewListItem creates a list item node.
func NewListItem(content ...Node) Node {
	return Node{
		Type:    KindListItem,
		Content: content,
	}
}

// NewBulletList creates a bullet list from the given items.
func NewBulletList(items ...Node) Node {
	return Node{
		Type:    KindBulletList,
		Content: items,
	}
}

// NewOrderedList creates an ordered list from the given items.
func NewOrderedList(items ...Node) Node {
	return Node{
		Type:    KindOrderedList,
		Content: items,
	}
}

// NewCodeBlock creates a code block holding the given text. The
// language attribute is omitted when empty.
func NewCodeBlock(language, text string) Node {
	node := Node{
		Type:    KindCodeBlock,
		Content: []Node{NewText(text)},
	}
	if language != "" {
		node.Attrs = map[string]interface{}{
			"language": language,
		}
	}
	return node
}

// NewBlockquote creates a blockquote node.
func NewBlockquote(content ...Node) Node {
	return Node{
		Type:    KindBlockquote,
		Content: content,
	}
}

// NewRule creates a horizontal rule node.
func NewRule() Node {
	return Node{Type: KindRule}
}

// NewHardBreak creates a hard line break node.
func NewHardBreak() Node {
	return Node{Type: KindHardBreak}
}

// NewLinkMark creates a link mark pointing at href.
func NewLinkMark(href string) Mark {
	return Mark{
		Type: MarkLink,
		Attrs: map[string]interface{}{
			"href": href,
		},
	}
}
