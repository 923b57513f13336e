package scraper

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// elements whose text is never part of the readable page
var skippedElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Nav:      true,
	atom.Footer:   true,
	atom.Header:   true,
	atom.Noscript: true,
	atom.Svg:      true,
	atom.Template: true,
	atom.Iframe:   true,
}

// parses an HTML document and returns its visible text with whitespace collapsed
func ExtractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	collectText(doc, &builder)

	return strings.Join(strings.Fields(builder.String()), " "), nil
}

func collectText(n *html.Node, builder *strings.Builder) {
	if n.Type == html.ElementNode && skippedElements[n.DataAtom] {
		return
	}

	if n.Type == html.CommentNode {
		return
	}

	if n.Type == html.TextNode {
		builder.WriteString(n.Data)
		builder.WriteByte(' ')
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, builder)
	}
}
