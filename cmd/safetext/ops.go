package main

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/safetext/pkg/dom"
	"github.com/dmitrymomot/safetext/pkg/sanitizer"
)

type operation func(in string) (string, error)

// textOps are pure string transforms and may be chained with commas.
var textOps = map[string]func(string) string{
	"escape": sanitizer.EscapeHTML,
	"strip":  sanitizer.StripScripts,
	"clean":  sanitizer.CleanText,
	"url":    sanitizer.SanitizeURL,
	"html":   sanitizer.SanitizeHTML,
	"tags":   sanitizer.StripTags,
}

var structuredOps = map[string]operation{
	"json":       parseJSON,
	"input":      sanitizeInput,
	"inner-html": renderInnerHTML,
	"text-node":  renderTextNode,
}

// lookup resolves a single operation name or a comma-separated pipeline of
// text operations.
func lookup(name string) (operation, error) {
	if op, ok := structuredOps[name]; ok {
		return op, nil
	}

	parts := strings.Split(name, ",")
	transforms := make([]func(string) string, 0, len(parts))
	for _, part := range parts {
		f, ok := textOps[strings.TrimSpace(part)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, part)
		}
		transforms = append(transforms, f)
	}

	pipeline := sanitizer.Compose(transforms...)
	return func(in string) (string, error) {
		return pipeline(in), nil
	}, nil
}

func parseJSON(in string) (string, error) {
	b, err := sanitizer.SafeJSONParse(in).MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(b), nil
}

// sanitizeInput treats input that is not JSON as a single text value.
func sanitizeInput(in string) (string, error) {
	v := sanitizer.SafeJSONParse(in)
	if s, ok := v.(sanitizer.Scalar); ok && s.IsNull() && strings.TrimSpace(in) != "null" {
		v = sanitizer.Text(in)
	}
	b, err := sanitizer.SanitizeInput(v).MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(b), nil
}

func renderInnerHTML(in string) (string, error) {
	div := dom.NewNode("div")
	sanitizer.SetSafeInnerHTML(div, in)
	return div.Render()
}

func renderTextNode(in string) (string, error) {
	div := dom.NewNode("div")
	sanitizer.AppendSafeTextNode(div, in)
	return div.Render()
}
