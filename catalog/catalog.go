// Package catalog records where each page of a dump was written, in
// one of several document stores.
//
// The HTML tree never needs a catalog to be browsed; this is for
// searching it, or for finding the file of a title without hashing it.
package catalog

import (
	"github.com/dustin/go-wikihtml"
	"github.com/pkg/errors"
)

// A Sink receives catalog entries until it's closed.
type Sink interface {
	wikihtml.Recorder
	Close() error
}

// Open gets the sink described by the config.  An empty kind gives a
// nil Sink and no error.
func Open(cfg wikihtml.CatalogConfig) (Sink, error) {
	var (
		s   Sink
		err error
	)
	switch cfg.Kind {
	case "":
		return nil, nil
	case "sqlite":
		s, err = OpenSQLite(cfg.URL)
	case "couchdb":
		s, err = OpenCouchDB(cfg.URL)
	case "couchbase":
		s, err = OpenCouchbase(cfg.URL, cfg.Bucket)
	case "elasticsearch":
		s, err = OpenElasticSearch(cfg.URL, cfg.Index)
	case "mongodb":
		s, err = OpenMongo(cfg.URL, cfg.Database, cfg.Collection)
	default:
		return nil, errors.Errorf("unknown catalog kind %q", cfg.Kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening %v catalog", cfg.Kind)
	}
	return s, nil
}
