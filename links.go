package wikihtml

import (
	"path"
	"regexp"
	"strings"
)

var linkRE = regexp.MustCompile(`\[\[([^\|\]]+)`)

// FindLinks finds all the links from within an article body.
func FindLinks(text string) []string {
	matches := linkRE.FindAllStringSubmatch(stripMarkupNoise(text), -1)

	rv := make([]string, 0, len(matches))
	for _, x := range matches {
		rv = append(rv, x[1])
	}

	return rv
}

// RewriteLink maps an href found in converted HTML to its place in
// the output tree.
//
// External links and media references are left alone.  Anything else
// is taken to be a page title and pointed at that page's addressed
// file, one directory up from the page doing the linking.
func RewriteLink(href string) string {
	switch {
	case strings.HasPrefix(href, "http:"), strings.HasPrefix(href, "https:"):
		return href
	case isMediaRef(href):
		return href
	}
	return path.Join("..", Address(href))
}
