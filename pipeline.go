package wikihtml

import (
	"context"
	"io"
	"log"

	"github.com/pkg/errors"
)

// Stats counts what a run did.
type Stats struct {
	Pages      int64
	Redirects  int64
	Converted  int64
	Unenriched int64
	FixedPoint int64
	Exhausted  int64
	// Failed counts pages that could not be written while KeepGoing
	// was set.
	Failed int64
}

func (s *Stats) count(e *Entry) {
	if e.Redirect != "" {
		s.Redirects++
	}
	switch e.Outcome {
	case Converted:
		s.Converted++
	case Unenriched:
		s.Unenriched++
	case FixedPoint:
		s.FixedPoint++
	case Exhausted:
		s.Exhausted++
	}
}

// A Pipeline materializes every page of a dump, one after the other.
type Pipeline struct {
	Materializer *Materializer
	// Progress defaults to NopProgress.
	Progress Progress
	// Catalog, if set, gets an entry for each page written.
	Catalog Recorder
	// KeepGoing skips pages that fail to be written instead of ending
	// the run.  Broken XML and a broken engine still end it.
	KeepGoing bool
	Log       *log.Logger
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.Log != nil {
		p.Log.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Run reads the dump from r and materializes each page in turn.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) (Stats, error) {
	var st Stats

	progress := p.Progress
	if progress == nil {
		progress = NopProgress{}
	}

	err := Scan(r, func(page *Page) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		e, err := p.Materializer.Materialize(ctx, page)
		_, isWrite := err.(*WriteError)
		switch {
		case err == nil:
		case p.KeepGoing && isWrite:
			p.logf("Skipping %q: %v", page.Title, err)
			st.Failed++
		default:
			return err
		}

		if e != nil {
			st.count(e)
			if p.Catalog != nil {
				if err := p.Catalog.Record(e); err != nil {
					return errors.Wrapf(err, "cataloging %q", page.Title)
				}
			}
		}

		st.Pages++
		progress.Report(st.Pages)
		return nil
	})

	progress.Done(st.Pages)
	return st, err
}
