package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// htmlReplacer works in a single pass, so the entities it emits are never
// escaped a second time.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// EscapeHTML escapes &, <, >, " and ' so the result can be placed in HTML
// text or a quoted attribute. It is not idempotent: "&amp;" becomes "&amp;amp;".
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// StripScripts removes every <script>…</script> block, matching tag names
// case-insensitively. A <script> without a closing tag is left in place.
func StripScripts(s string) string {
	return scriptBlockRegex.ReplaceAllString(s, "")
}

// CleanText keeps only ASCII letters, digits, space and the marks . , ! ? ' -
func CleanText(s string) string {
	return disallowedTextRegex.ReplaceAllString(s, "")
}

// SanitizeHTML keeps safe user-generated markup (paragraphs, links, lists,
// tables, …) and drops scripts, event handlers and unsafe URLs.
func SanitizeHTML(s string) string {
	return ugcPolicy.Sanitize(s)
}

// StripTags removes all markup and returns the remaining text.
func StripTags(s string) string {
	return strictPolicy.Sanitize(s)
}
