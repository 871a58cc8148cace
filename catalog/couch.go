package catalog

import (
	"log"
	"net/http"
	"net/url"

	"github.com/dustin/go-couch"
	"github.com/dustin/go-wikihtml"
	"github.com/dustin/httputil"
	"github.com/pkg/errors"
)

type couchDoc struct {
	ID  string `json:"_id"`
	Rev string `json:"_rev,omitempty"`
	*wikihtml.Entry
}

// CouchDB is a catalog keeping one document per title.
type CouchDB struct {
	db couch.Database
}

// OpenCouchDB connects to the database at the given URL.
func OpenCouchDB(dburl string) (*CouchDB, error) {
	db, err := couch.Connect(dburl)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to couchdb")
	}
	return &CouchDB{db: db}, nil
}

// escapeTitle escapes a document id for a read the same way go-couch
// escapes it for a write.
func escapeTitle(in string) string {
	return url.QueryEscape(in)
}

// Record inserts the entry, replacing an older revision of the same
// title.
func (c *CouchDB) Record(e *wikihtml.Entry) error {
	doc := couchDoc{ID: e.Title, Entry: e}
	_, _, err := c.db.Insert(&doc)
	switch {
	case err == nil:
		return nil
	case httputil.IsHTTPStatus(err, http.StatusConflict):
		return c.resolveConflict(&doc)
	}
	return errors.Wrapf(err, "inserting %q", e.Title)
}

func (c *CouchDB) resolveConflict(doc *couchDoc) error {
	var prev couchDoc
	prev.Entry = &wikihtml.Entry{}
	if err := c.db.Retrieve(escapeTitle(doc.ID), &prev); err != nil {
		return errors.Wrapf(err, "retrieving existing %v", doc.ID)
	}
	if prev.Rev == "" {
		return errors.Errorf("got no rev from %v", doc.ID)
	}
	if doc.RevInfo.Timestamp < prev.RevInfo.Timestamp {
		log.Printf("Keeping newer catalog entry for %v", doc.ID)
		return nil
	}
	_, err := c.db.EditWith(doc, doc.ID, prev.Rev)
	return errors.Wrapf(err, "updating %v", doc.ID)
}

// Close is a no-op; couch connections are per request.
func (c *CouchDB) Close() error { return nil }
