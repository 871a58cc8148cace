package wikihtml

import (
	"bufio"
	"compress/bzip2"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type dumpFile struct {
	io.Reader
	f *os.File
}

func (d *dumpFile) Close() error {
	return d.f.Close()
}

// OpenDump opens a dump file, decompressing it on the fly when the
// name ends in .bz2.
func OpenDump(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening dump")
	}

	var r io.Reader = bufio.NewReaderSize(f, 1<<16)
	if strings.HasSuffix(filename, ".bz2") {
		r = bzip2.NewReader(r)
	}
	return &dumpFile{Reader: r, f: f}, nil
}
