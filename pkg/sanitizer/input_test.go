package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safetext/pkg/sanitizer"
)

func TestSanitizeInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    sanitizer.Value
		expected sanitizer.Value
	}{
		{
			name:     "strips then escapes text",
			input:    sanitizer.Text(`<b>"hi"</b><script>x</script>`),
			expected: sanitizer.Text("&lt;b&gt;&quot;hi&quot;&lt;/b&gt;"),
		},
		{
			name: "sanitizes mapping of sequences",
			input: sanitizer.Mapping{
				"tags": sanitizer.Sequence{sanitizer.Text("<script>x</script>"), sanitizer.Text("ok")},
				"n":    sanitizer.NewScalar(5),
			},
			expected: sanitizer.Mapping{
				"tags": sanitizer.Sequence{sanitizer.Text(""), sanitizer.Text("ok")},
				"n":    sanitizer.NewScalar(5),
			},
		},
		{
			name:     "does not sanitize keys",
			input:    sanitizer.Mapping{"<k>": sanitizer.Text("<v>")},
			expected: sanitizer.Mapping{"<k>": sanitizer.Text("&lt;v&gt;")},
		},
		{
			name: "keeps scalars",
			input: sanitizer.Sequence{
				sanitizer.NewScalar(3.14),
				sanitizer.NewScalar(true),
				sanitizer.Null,
			},
			expected: sanitizer.Sequence{
				sanitizer.NewScalar(3.14),
				sanitizer.NewScalar(true),
				sanitizer.Null,
			},
		},
		{
			name:     "unterminated script is escaped",
			input:    sanitizer.Text("<script>bad()"),
			expected: sanitizer.Text("&lt;script&gt;bad()"),
		},
		{
			name:     "null passes through",
			input:    sanitizer.Null,
			expected: sanitizer.Null,
		},
		{
			name:     "nil value passes through",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeInput(tt.input))
		})
	}
}

func TestSanitizeInput_PreservesShape(t *testing.T) {
	t.Parallel()

	input := sanitizer.Mapping{
		"title": sanitizer.Text("Tom & Jerry"),
		"items": sanitizer.Sequence{
			sanitizer.Text("<i>one</i>"),
			sanitizer.Mapping{
				"note":  sanitizer.Text("it's <script>alert(1)</script>fine"),
				"count": sanitizer.NewScalar(2.0),
			},
			sanitizer.Sequence{},
		},
		"empty": sanitizer.Mapping{},
	}

	out, ok := sanitizer.SanitizeInput(input).(sanitizer.Mapping)
	require.True(t, ok)
	require.Len(t, out, len(input))

	assert.Equal(t, sanitizer.Text("Tom &amp; Jerry"), out["title"])
	assert.Equal(t, sanitizer.Mapping{}, out["empty"])

	items, ok := out["items"].(sanitizer.Sequence)
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Equal(t, sanitizer.Text("&lt;i&gt;one&lt;/i&gt;"), items[0])
	assert.Equal(t, sanitizer.Sequence{}, items[2])

	nested, ok := items[1].(sanitizer.Mapping)
	require.True(t, ok)
	assert.Equal(t, sanitizer.Text("it&#39;s fine"), nested["note"])
	assert.Equal(t, sanitizer.NewScalar(2.0), nested["count"])

	// every leaf follows EscapeHTML(StripScripts(leaf))
	leaf := "it's <script>alert(1)</script>fine"
	assert.Equal(t, sanitizer.EscapeHTML(sanitizer.StripScripts(leaf)), string(nested["note"].(sanitizer.Text)))
}

func TestSanitizeInput_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := sanitizer.Mapping{"a": sanitizer.Sequence{sanitizer.Text("<b>")}}
	_ = sanitizer.SanitizeInput(input)

	assert.Equal(t, sanitizer.Text("<b>"), input["a"].(sanitizer.Sequence)[0])
}

func TestSanitizeInput_FromJSON(t *testing.T) {
	t.Parallel()

	parsed := sanitizer.SafeJSONParse(`{"tags":["<script>x</script>","ok"],"n":5}`)
	clean := sanitizer.SanitizeInput(parsed)

	b, err := clean.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":["","ok"],"n":5}`, string(b))

	escaped, err := sanitizer.SanitizeInput(sanitizer.SafeJSONParse(`{"a":"<b>&"}`)).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":"&lt;b&gt;&amp;"}`, string(escaped))
}

func TestSanitizeAny(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"tags": []string{"<script>x</script>", "ok"},
		"n":    5,
		"ok":   true,
		"nil":  nil,
	}

	expected := map[string]any{
		"tags": []any{"", "ok"},
		"n":    5,
		"ok":   true,
		"nil":  nil,
	}

	assert.Equal(t, expected, sanitizer.SanitizeAny(input))
	assert.Equal(t, "&lt;p&gt;", sanitizer.SanitizeAny("<p>"))
	assert.Equal(t, 42, sanitizer.SanitizeAny(42))
	assert.Nil(t, sanitizer.SanitizeAny(nil))
}
