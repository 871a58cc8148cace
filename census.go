package wikihtml

import (
	"io"
	"log"
)

// CensusStats summarizes a dump without converting anything.
type CensusStats struct {
	SiteInfo    SiteInfo
	Pages       int64
	Redirects   int64
	Revisions   int64
	EmptyPages  int64
	WithCoords  int64
	CoordErrors int64
}

// Census walks a dump counting pages.  With coords set it also tries
// to parse geo data in every page, logging pages whose coordinates
// don't parse.
func Census(r io.Reader, coords bool, progress Progress) (CensusStats, error) {
	var st CensusStats
	if progress == nil {
		progress = NopProgress{}
	}

	p := NewParser(r)
	for {
		page, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			st.SiteInfo = p.SiteInfo
			return st, err
		}

		st.Pages++
		st.Revisions += int64(len(page.Revisions))
		if page.IsRedirect() {
			st.Redirects++
		}
		text := page.Text()
		if text == "" {
			st.EmptyPages++
		}
		if coords {
			switch _, err := FindCoord(text); err {
			case nil:
				st.WithCoords++
			case ErrNoCoord:
			default:
				st.CoordErrors++
				log.Printf("Error parsing geo from %q: %v", page.Title, err)
			}
		}
		progress.Report(st.Pages)
	}

	st.SiteInfo = p.SiteInfo
	progress.Done(st.Pages)
	return st, nil
}
