package sanitizer

// HTMLSetter is a rendering target with an assignable raw-content attribute.
type HTMLSetter interface {
	SetInnerHTML(markup string)
}

// TextAppender is a rendering target that can take a text-only child node.
// Implementations must never interpret the text as markup.
type TextAppender interface {
	AppendTextNode(text string)
}

// Element is a rendering target supporting both operations.
type Element interface {
	HTMLSetter
	TextAppender
}

// SetSafeInnerHTML replaces the target's content with the escaped text.
// Script blocks are escaped, not removed; compose StripScripts first if they
// should disappear entirely.
func SetSafeInnerHTML(target HTMLSetter, text string) {
	target.SetInnerHTML(EscapeHTML(text))
}

// AppendSafeTextNode appends text as the parent's last child. No escaping is
// applied because a text node is rendered literally.
func AppendSafeTextNode(parent TextAppender, text string) {
	parent.AppendTextNode(text)
}
