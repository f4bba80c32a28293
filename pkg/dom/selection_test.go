package dom_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safetext/pkg/dom"
	"github.com/dmitrymomot/safetext/pkg/sanitizer"
)

var _ sanitizer.Element = (*dom.Selection)(nil)

func TestSelection_AppendSafeTextNode(t *testing.T) {
	t.Parallel()

	sel, err := dom.ParseSelection(`<ul><li class="a">1</li><li class="a">2</li><li>3</li></ul>`, "li.a")
	require.NoError(t, err)

	sanitizer.AppendSafeTextNode(sel, "<x>")

	first, err := sel.Render()
	require.NoError(t, err)
	assert.Equal(t, "1&lt;x&gt;", first)

	last, err := sel.Selection().Last().Html()
	require.NoError(t, err)
	assert.Equal(t, "2&lt;x&gt;", last)
}

func TestSelection_SetSafeInnerHTML(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<div id="c"><p>old</p></div>`))
	require.NoError(t, err)

	sel, err := dom.FromDocument(doc, "#c")
	require.NoError(t, err)

	sanitizer.SetSafeInnerHTML(sel, "a & <script>b</script>")

	out, err := sel.Render()
	require.NoError(t, err)
	assert.Equal(t, "a &amp; &lt;script&gt;b&lt;/script&gt;", out)
	assert.Equal(t, 0, doc.Find("#c p").Length())
	assert.Equal(t, 0, doc.Find("#c script").Length())
}

func TestSelect_Errors(t *testing.T) {
	t.Parallel()

	_, err := dom.ParseSelection("<p>x</p>", ".missing")
	require.ErrorIs(t, err, dom.ErrNotFound)

	_, err = dom.FromDocument(nil, "p")
	require.ErrorIs(t, err, dom.ErrNilNode)

	_, err = dom.NewSelection(nil)
	require.ErrorIs(t, err, dom.ErrNilNode)
}
