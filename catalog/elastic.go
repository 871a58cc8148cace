package catalog

import (
	"github.com/dustin/go-elasticsearch"
	"github.com/dustin/go-wikihtml"
	"github.com/pkg/errors"
)

// DefaultIndex is the elasticsearch index used when none is given.
const DefaultIndex = "wikihtml"

const esBatchSize = 1000

// ElasticSearch is a catalog fed through the bulk API in batches.
type ElasticSearch struct {
	index   string
	pending int

	update func(*elasticsearch.UpdateInstruction)
	flush  func() error
	quit   func()
}

// OpenElasticSearch starts a bulk loader against the server at u.
func OpenElasticSearch(u, index string) (*ElasticSearch, error) {
	if index == "" {
		index = DefaultIndex
	}
	es := elasticsearch.ElasticSearch{URL: u}
	bulk := es.Bulk()
	return &ElasticSearch{
		index:  index,
		update: func(ui *elasticsearch.UpdateInstruction) { bulk.Update(ui) },
		flush:  bulk.SendBatch,
		quit:   func() { bulk.Quit() },
	}, nil
}

// Record queues the entry, sending a batch every thousand entries.
func (e *ElasticSearch) Record(ent *wikihtml.Entry) error {
	e.update(&elasticsearch.UpdateInstruction{
		Id:    ent.Title,
		Index: e.index,
		Type:  "page",
		Body: map[string]interface{}{
			"path":      ent.Path,
			"redirect":  ent.Redirect,
			"outcome":   ent.Outcome.String(),
			"timestamp": ent.RevInfo.Timestamp,
			"author":    ent.RevInfo.Contributor,
			"links":     ent.Links,
			"files":     ent.Files,
			"file_urls": ent.FileURLs,
			"geo":       ent.Geo,
		},
	})
	e.pending++
	if e.pending >= esBatchSize {
		e.pending = 0
		return errors.Wrap(e.flush(), "sending elasticsearch batch")
	}
	return nil
}

// Close sends whatever is still queued and stops the loader.
func (e *ElasticSearch) Close() error {
	defer e.quit()
	if e.pending == 0 {
		return nil
	}
	e.pending = 0
	return errors.Wrap(e.flush(), "sending elasticsearch batch")
}
