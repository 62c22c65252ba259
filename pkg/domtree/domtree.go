// Package domtree renders parsed HTML trees as escaped, indented tag outlines.
package domtree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// indentMarker is prepended once per nesting level.
const indentMarker = "  "

// TokenKind distinguishes opening from closing tag tokens.
type TokenKind int

const (
	TokenOpen TokenKind = iota
	TokenClose
)

// String returns the lowercase token kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	default:
		return "unknown"
	}
}

// TagToken records one tag boundary in document order.
type TagToken struct {
	Kind TokenKind
	Name string
}

// Result holds the rendered outline and the flat tag token list.
type Result struct {
	Markup string
	Tokens []TagToken
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return node, nil
}

// Serialize renders the element children of n as one escaped tag per line,
// indented by depth. The returned token list pairs an open token for each
// element on entry with a close token after its subtree. Text, comment, and
// other non-element nodes are skipped and do not affect depth. Output depends
// only on the subtree, so repeated calls return identical results.
func Serialize(n *html.Node) Result {
	var sb strings.Builder
	tokens, _ := Write(&sb, n) // strings.Builder writes cannot fail
	return Result{Markup: sb.String(), Tokens: tokens}
}

// Write streams the rendered outline of n's element children to w and
// returns the tag tokens accumulated along the walk.
func Write(w io.Writer, n *html.Node) ([]TagToken, error) {
	var tokens []TagToken
	if n == nil {
		return tokens, nil
	}
	if err := writeChildren(w, n, 0, &tokens); err != nil {
		return tokens, err
	}
	return tokens, nil
}

func writeChildren(w io.Writer, n *html.Node, depth int, tokens *[]TagToken) error {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}

		line := strings.Repeat(indentMarker, depth) + "&lt;" + child.Data + "&gt;\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}

		*tokens = append(*tokens, TagToken{Kind: TokenOpen, Name: child.Data})
		if err := writeChildren(w, child, depth+1, tokens); err != nil {
			return err
		}
		*tokens = append(*tokens, TagToken{Kind: TokenClose, Name: child.Data})
	}
	return nil
}
