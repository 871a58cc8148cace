package wikihtml

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"
)

// Progress hears about pages as a run gets through them.
type Progress interface {
	// Report is called after each page with the count so far.
	Report(pages int64)
	// Done is called once with the final count.
	Done(pages int64)
}

// NopProgress reports nothing.
type NopProgress struct{}

func (NopProgress) Report(int64) {}
func (NopProgress) Done(int64)   {}

// CounterProgress keeps a single running count on a terminal line.
type CounterProgress struct {
	W io.Writer
}

func (c *CounterProgress) Report(pages int64) {
	fmt.Fprintf(c.W, "\r%d", pages)
}

func (c *CounterProgress) Done(pages int64) {
	fmt.Fprintf(c.W, "\r%d\n", pages)
}

// LogProgress logs the count and rate every Every pages.
type LogProgress struct {
	Every int64
	// Log defaults to the standard logger.
	Log *log.Logger

	start, prev time.Time
}

// DefaultReportEvery is how often LogProgress logs unless told
// otherwise.
const DefaultReportEvery = 1000

func (l *LogProgress) printf(format string, args ...interface{}) {
	if l.Log != nil {
		l.Log.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (l *LogProgress) Report(pages int64) {
	now := time.Now()
	if l.start.IsZero() {
		l.start, l.prev = now, now
	}
	every := l.Every
	if every <= 0 {
		every = DefaultReportEvery
	}
	if pages%every != 0 {
		return
	}
	d := now.Sub(l.prev)
	l.printf("Processed %s pages total (%.2f/s)",
		humanize.Comma(pages), float64(every)/d.Seconds())
	l.prev = now
}

func (l *LogProgress) Done(pages int64) {
	d := time.Since(l.start)
	if l.start.IsZero() {
		d = 0
	}
	rate := 0.0
	if d > 0 {
		rate = float64(pages) / d.Seconds()
	}
	l.printf("Ended after %v with %s pages (%.2f p/s)",
		d, humanize.Comma(pages), rate)
}
