package wikihtml

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// The toplevel site info describing basic dump properties.
type SiteInfo struct {
	SiteName   string `xml:"sitename"`
	Base       string `xml:"base"`
	Generator  string `xml:"generator"`
	Case       string `xml:"case"`
	Namespaces []struct {
		Key   string `xml:"key,attr"`
		Case  string `xml:"case,attr"`
		Value string `xml:",chardata"`
	} `xml:"namespaces>namespace"`
}

// A user who contributed a revision.
type Contributor struct {
	ID       uint64 `xml:"id"`
	Username string `xml:"username"`
}

// A revision to a page.
type Revision struct {
	ID          uint64      `xml:"id"`
	Timestamp   string      `xml:"timestamp"`
	Contributor Contributor `xml:"contributor"`
	Comment     string      `xml:"comment"`
	Text        string      `xml:"text"`
}

// The marker on a page that only points somewhere else.
type Redirect struct {
	Title string `xml:"title,attr"`
}

// A wiki page.
type Page struct {
	Title     string     `xml:"title"`
	NS        int        `xml:"ns"`
	ID        uint64     `xml:"id"`
	Redirect  *Redirect  `xml:"redirect"`
	Revisions []Revision `xml:"revision"`
}

// IsRedirect is true for pages carrying a redirect marker.
func (p *Page) IsRedirect() bool {
	return p.Redirect != nil
}

// RedirectTitle is the redirect target, or "" for ordinary pages.
func (p *Page) RedirectTitle() string {
	if p.Redirect == nil {
		return ""
	}
	return p.Redirect.Title
}

// Latest gets the most recent revision, which dumps list last.  It's
// nil for a page without revisions.
func (p *Page) Latest() *Revision {
	if len(p.Revisions) == 0 {
		return nil
	}
	return &p.Revisions[len(p.Revisions)-1]
}

// Text is the markup of the latest revision.
func (p *Page) Text() string {
	if r := p.Latest(); r != nil {
		return r.Text
	}
	return ""
}

// That which emits wiki pages.
//
// Only one page is decoded at a time and nothing is kept once Next
// moves on, so memory use doesn't grow with the size of the dump.
type Parser struct {
	// The toplevel site info, filled in once the parser has passed it.
	SiteInfo SiteInfo
	x        *xml.Decoder
}

// Get a wikipedia dump parser reading from the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{x: xml.NewDecoder(r)}
}

// Get the next page from the parser.
//
// Pages are matched by local name, in any namespace.  The error is
// io.EOF at the end of the dump; anything else means the dump is
// broken and parsing can't go on.
func (p *Parser) Next() (*Page, error) {
	for {
		t, err := p.x.Token()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading dump")
		}

		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "siteinfo":
			if err := p.x.DecodeElement(&p.SiteInfo, &se); err != nil {
				return nil, errors.Wrap(err, "decoding siteinfo")
			}
		case "page":
			rv := new(Page)
			if err := p.x.DecodeElement(rv, &se); err != nil {
				return nil, errors.Wrap(err, "decoding page")
			}
			return rv, nil
		}
	}
}

// Scan calls fn for every page of the dump in document order.
//
// It stops at the first error from either the dump or fn.
func Scan(r io.Reader, fn func(*Page) error) error {
	p := NewParser(r)
	for {
		page, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
	}
}
