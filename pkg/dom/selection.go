package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Selection targets every element matched by a goquery selection.
type Selection struct {
	s *goquery.Selection
}

// NewSelection adapts an existing selection.
func NewSelection(s *goquery.Selection) (*Selection, error) {
	if s == nil {
		return nil, ErrNilNode
	}
	return &Selection{s: s}, nil
}

// FromDocument selects selector in doc. An empty match is ErrNotFound.
func FromDocument(doc *goquery.Document, selector string) (*Selection, error) {
	if doc == nil {
		return nil, ErrNilNode
	}
	s := doc.Find(selector)
	if s.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return &Selection{s: s}, nil
}

// ParseSelection parses markup and selects selector in it.
func ParseSelection(markup, selector string) (*Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("dom: parse markup: %w", err)
	}
	return FromDocument(doc, selector)
}

// Selection returns the underlying goquery selection.
func (s *Selection) Selection() *goquery.Selection { return s.s }

// SetInnerHTML replaces the content of every matched element.
func (s *Selection) SetInnerHTML(markup string) {
	s.s.SetHtml(markup)
}

// AppendTextNode appends a text node to every matched element.
func (s *Selection) AppendTextNode(text string) {
	s.s.AppendNodes(&html.Node{Type: html.TextNode, Data: text})
}

// Render returns the inner HTML of the first matched element.
func (s *Selection) Render() (string, error) {
	return s.s.Html()
}
