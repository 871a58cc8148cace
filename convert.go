package wikihtml

import (
	"context"
	"log"
	"strings"

	"github.com/pkg/errors"
)

// MaxAttempts bounds how many times a single page is handed to the
// engine.
const MaxAttempts = 5

// Outcome says how a page's conversion ended.
type Outcome int

const (
	// Converted pages went through the engine and Enrich.
	Converted Outcome = iota
	// Unenriched pages went through the engine, but its output could
	// not be enriched and is used as is.
	Unenriched
	// FixedPoint pages failed in the engine and FixTables could do
	// nothing more for them.  The markup is used unconverted.
	FixedPoint
	// Exhausted pages failed MaxAttempts times.  The last markup tried
	// is used unconverted.
	Exhausted
)

var outcomeNames = [...]string{"converted", "unenriched", "fixedpoint", "exhausted"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// MarshalText writes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText reads an outcome name written by MarshalText.
func (o *Outcome) UnmarshalText(b []byte) error {
	for i, n := range outcomeNames {
		if n == string(b) {
			*o = Outcome(i)
			return nil
		}
	}
	return errors.Errorf("unknown outcome %q", b)
}

// GetBSON stores the outcome by name in mongodb.
func (o Outcome) GetBSON() (interface{}, error) {
	return o.String(), nil
}

// Result is what a Converter produced for one page.
type Result struct {
	// Document text to write out: HTML when the engine succeeded,
	// markup otherwise.
	HTML     string
	Outcome  Outcome
	Attempts int
}

// A Converter runs markup through an Engine, repairing tables and
// retrying when the engine rejects it.
type Converter struct {
	Engine Engine
	// Sanitize repairs text the engine rejected.  Defaults to
	// FixTables.
	Sanitize func(string) string
	// Diagnostics go here, or to the standard logger if nil.
	Log *log.Logger
}

// NewConverter gets a Converter using FixTables for repairs.
func NewConverter(e Engine) *Converter {
	return &Converter{Engine: e, Sanitize: FixTables}
}

func (c *Converter) logf(format string, args ...interface{}) {
	if c.Log != nil {
		c.Log.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (c *Converter) sanitize(s string) string {
	if c.Sanitize == nil {
		return FixTables(s)
	}
	return c.Sanitize(s)
}

type attemptState int

const (
	attempting attemptState = iota
	sanitizing
	exhausted
	succeeded
)

// Convert turns a page's markup into a document.
//
// Engine rejections never make this fail: the page degrades to the
// raw engine output or to unconverted markup, as described by the
// Outcome.  The only error returned is one from the engine itself
// being unusable.
func (c *Converter) Convert(ctx context.Context, title, markup string) (Result, error) {
	var (
		rv      Result
		text    = markup
		out     string
		errText string
		err     error
	)

	state := attempting
	for {
		switch state {
		case attempting:
			rv.Attempts++
			out, errText, err = c.Engine.Convert(ctx, text)
			if err != nil {
				return Result{}, err
			}
			switch {
			case errText == "":
				state = succeeded
			case rv.Attempts >= MaxAttempts:
				c.logf("Conversion error in %v - %v (attempt %v, giving up): %v",
					title, Address(title), rv.Attempts, strings.TrimSpace(errText))
				state = exhausted
			default:
				c.logf("Conversion error in %v - %v (attempt %v, fixing tables): %v",
					title, Address(title), rv.Attempts, strings.TrimSpace(errText))
				state = sanitizing
			}

		case sanitizing:
			fixed := c.sanitize(text)
			if fixed == text {
				rv.HTML, rv.Outcome = text, FixedPoint
				return rv, nil
			}
			text = fixed
			state = attempting

		case exhausted:
			rv.HTML, rv.Outcome = text, Exhausted
			return rv, nil

		case succeeded:
			doc, err := Enrich(out, title)
			if err != nil {
				c.logf("Not enriching %v - %v: %v", title, Address(title), err)
				rv.HTML, rv.Outcome = out, Unenriched
				return rv, nil
			}
			rv.HTML, rv.Outcome = doc, Converted
			return rv, nil
		}
	}
}
