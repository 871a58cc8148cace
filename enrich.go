package wikihtml

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrEmptyDocument is returned by Enrich for blank engine output.
	ErrEmptyDocument = errors.New("document is empty")
	// ErrNoBody is returned by Enrich when the parsed document has no
	// body to put a heading in.
	ErrNoBody = errors.New("document has no body")
)

func textElement(a atom.Atom, text string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// Enrich parses engine output into a standalone page for title.
//
// The title becomes the document <title> and the first <h1> of the
// body, and every a[href] goes through RewriteLink.  Nothing else in
// the document is touched.
func Enrich(src, title string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", ErrEmptyDocument
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", errors.Wrap(err, "parsing engine output")
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", ErrNoBody
	}
	body.PrependNodes(textElement(atom.H1, title))

	head := doc.Find("html > head").First()
	if head.Length() == 0 {
		doc.Find("html").First().PrependNodes(&html.Node{
			Type: html.ElementNode, DataAtom: atom.Head, Data: "head",
		})
		head = doc.Find("html > head").First()
	}
	head.PrependNodes(textElement(atom.Title, title))

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		a.SetAttr("href", RewriteLink(href))
	})

	var buf bytes.Buffer
	if err := html.Render(&buf, doc.Get(0)); err != nil {
		return "", errors.Wrap(err, "rendering document")
	}
	return buf.String(), nil
}
