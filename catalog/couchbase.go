package catalog

import (
	"github.com/couchbase/go-couchbase"
	"github.com/dustin/go-wikihtml"
	"github.com/pkg/errors"
)

// Couchbase is a catalog in a couchbase bucket keyed by title.
type Couchbase struct {
	bucket *couchbase.Bucket
}

// OpenCouchbase connects to the named bucket of the default pool.
func OpenCouchbase(server, bucket string) (*Couchbase, error) {
	if bucket == "" {
		bucket = "default"
	}
	b, err := couchbase.GetBucket(server, "default", bucket)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to couchbase")
	}
	return &Couchbase{bucket: b}, nil
}

// Record stores the entry under its title, replacing any older one.
func (c *Couchbase) Record(e *wikihtml.Entry) error {
	return errors.Wrapf(c.bucket.Set(e.Title, 0, e), "setting %q", e.Title)
}

// Close shuts down the bucket's connections.
func (c *Couchbase) Close() error {
	c.bucket.Close()
	return nil
}
