package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Script blocks, lazily matched up to the first closing tag
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b.*?</script>`)

	// Everything outside the plain-text whitelist
	disallowedTextRegex = regexp.MustCompile(`[^a-zA-Z0-9 .,!?'-]`)
)
