package wikihtml

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultOutputDir is where pages go unless told otherwise.
const DefaultOutputDir = "out"

// A WriteError is a failure to put a converted page on disk.
type WriteError struct {
	Title    string
	Filename string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %q to %v: %v", e.Title, e.Filename, e.Err)
}

// Cause is the underlying filesystem error.
func (e *WriteError) Cause() error { return e.Err }

func (e *WriteError) Unwrap() error { return e.Err }

// A Materializer converts pages and writes them to their addressed
// paths under Root.
type Materializer struct {
	Root      string
	Converter *Converter
}

// Filename is where the page with the given title is written.
func (m *Materializer) Filename(title string) string {
	root := m.Root
	if root == "" {
		root = DefaultOutputDir
	}
	return filepath.Join(root, filepath.FromSlash(Address(title)))
}

// Materialize converts a page and writes it out, replacing whatever
// was there before.  Filesystem failures are returned as *WriteError.
//
// Redirect pages are converted like any other; their markup is just
// the redirect line.
func (m *Materializer) Materialize(ctx context.Context, p *Page) (*Entry, error) {
	res, err := m.Converter.Convert(ctx, p.Title, p.Text())
	if err != nil {
		return nil, errors.Wrapf(err, "converting %q", p.Title)
	}

	fn := m.Filename(p.Title)
	if err := writeFile(fn, res.HTML); err != nil {
		return nil, &WriteError{Title: p.Title, Filename: fn, Err: errors.WithStack(err)}
	}

	return NewEntry(p, res), nil
}

func writeFile(fn, content string) (err error) {
	if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
		return err
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(f, content)
	return err
}
