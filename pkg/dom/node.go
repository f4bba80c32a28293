package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is an element of an x/net/html tree.
type Node struct {
	n *html.Node
}

// NewNode creates a detached element with the given tag name.
func NewNode(tag string) *Node {
	tag = strings.ToLower(tag)
	return &Node{n: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// Wrap adapts an existing element node.
func Wrap(n *html.Node) (*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if n.Type != html.ElementNode {
		return nil, ErrNotElement
	}
	return &Node{n: n}, nil
}

// ParseNode parses markup as a full document and returns its first element
// with the given tag.
func ParseNode(markup, tag string) (*Node, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("dom: parse markup: %w", err)
	}
	found := findElement(root, strings.ToLower(tag))
	if found == nil {
		return nil, fmt.Errorf("%w: <%s>", ErrNotFound, tag)
	}
	return &Node{n: found}, nil
}

// HTML returns the underlying node.
func (n *Node) HTML() *html.Node { return n.n }

// SetInnerHTML replaces all children with the nodes parsed from markup in
// the context of this element.
func (n *Node) SetInnerHTML(markup string) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), n.n)
	if err != nil {
		// strings.Reader never fails
		nodes = []*html.Node{{Type: html.TextNode, Data: markup}}
	}

	for c := n.n.FirstChild; c != nil; c = n.n.FirstChild {
		n.n.RemoveChild(c)
	}
	for _, c := range nodes {
		n.n.AppendChild(c)
	}
}

// AppendTextNode appends a text node. The renderer escapes it on output.
func (n *Node) AppendTextNode(text string) {
	n.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Render serialises the element's children, i.e. its inner HTML.
func (n *Node) Render() (string, error) {
	var b strings.Builder
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("dom: render: %w", err)
		}
	}
	return b.String(), nil
}

// Text returns the concatenated text content of the element.
func (n *Node) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(x *html.Node) {
		if x.Type == html.TextNode {
			b.WriteString(x.Data)
		}
		for c := x.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n.n)
	return b.String()
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
