// Package dom provides concrete rendering targets for the sanitizer package.
//
// Node wraps a *html.Node from golang.org/x/net/html and Selection wraps a
// *goquery.Selection. Both satisfy sanitizer.Element, so server-side code can
// build or patch HTML trees with the same helpers a browser would use:
//
//	div := dom.NewNode("div")
//	sanitizer.AppendSafeTextNode(div, userComment)
//	markup, err := div.Render()
//
// Targets are not safe for concurrent writes; serialise access to a shared
// tree.
package dom
