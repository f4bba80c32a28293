// Package sanitizer provides small, stateless helpers that neutralise
// untrusted text before it is rendered into HTML, followed as a link or
// stored.
//
// The helpers are grouped conceptually into several areas:
//
//   - Escaping – EscapeHTML replaces the five HTML-significant characters with
//     entities; StripScripts removes <script>…</script> blocks by pattern.
//
//   - URLs – SanitizeURL accepts only absolute http/https URLs and returns
//     their normalised form, or BlankURL for anything else.
//
//   - Text – CleanText keeps a restricted ASCII character set and drops
//     everything else.
//
//   - Structured data – SafeJSONParse decodes JSON into a Value tree without
//     ever returning an error; SanitizeInput walks a Value tree and cleans
//     every text leaf.
//
//   - Rendering targets – SetSafeInnerHTML and AppendSafeTextNode write text
//     into a caller-owned, DOM-like tree through the HTMLSetter and
//     TextAppender interfaces. Concrete targets live in package dom.
//
//   - Policies – SanitizeHTML and StripTags delegate to bluemonday policies
//     when markup must be kept or removed wholesale instead of escaped.
//
// # Usage
//
//	import "github.com/dmitrymomot/safetext/pkg/sanitizer"
//
//	safe := sanitizer.EscapeHTML(`<a href="x">Tom & Jerry</a>`)
//	// safe == "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&lt;/a&gt;"
//
//	link := sanitizer.SanitizeURL("javascript:alert(1)")
//	// link == "about:blank"
//
//	payload := sanitizer.SafeJSONParse(`{"tags":["<script>x</script>","ok"],"n":5}`)
//	clean := sanitizer.SanitizeInput(payload)
//	// clean == Mapping{"tags": Sequence{Text(""), Text("ok")}, "n": NewScalar(5.0)}
//
// Transforms can be chained with Apply and Compose:
//
//	escapeAll := sanitizer.Compose(sanitizer.StripScripts, sanitizer.EscapeHTML)
//	sanitizer.SetSafeInnerHTML(el, escapeAll(userInput))
//
// # Error handling
//
// None of the helpers returns an error. Failures collapse into documented
// sentinels: BlankURL for rejected URLs and Null for malformed JSON. Note that
// Null is also the result of parsing the literal "null".
//
// # Known limitations
//
// StripScripts leaves an unterminated <script> block untouched, and
// SanitizeInput has no cycle detection: a Mapping or Sequence that contains
// itself recurses until the stack is exhausted. Neither function is a
// complete XSS defence.
//
// # Concurrency
//
// All helpers are safe for concurrent use. Rendering targets are not locked:
// callers must serialise writes to a shared target.
package sanitizer
