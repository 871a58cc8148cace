package catalog

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/dustin/go-elasticsearch"
	"github.com/dustin/go-wikihtml"
	"github.com/pkg/errors"
)

func TestElasticSearchBatches(t *testing.T) {
	var queued []*elasticsearch.UpdateInstruction
	var flushedAt []int
	quit := false
	es := &ElasticSearch{
		index:  DefaultIndex,
		update: func(ui *elasticsearch.UpdateInstruction) { queued = append(queued, ui) },
		flush: func() error {
			flushedAt = append(flushedAt, len(queued))
			return nil
		},
		quit: func() { quit = true },
	}

	for i := 0; i < 2500; i++ {
		e := &wikihtml.Entry{Title: fmt.Sprintf("Page %v", i), FileURLs: []string{"u"}}
		if err := es.Record(e); err != nil {
			t.Fatalf("Error recording: %v", err)
		}
	}
	if exp := []int{1000, 2000}; !reflect.DeepEqual(flushedAt, exp) {
		t.Fatalf("Expected batches sent after %v entries, got %v", exp, flushedAt)
	}
	if err := es.Close(); err != nil || !quit {
		t.Fatalf("Expected close to stop the loader, got %v, %v", quit, err)
	}
	if exp := []int{1000, 2000, 2500}; !reflect.DeepEqual(flushedAt, exp) {
		t.Fatalf("Expected the rest sent on close, got %v", flushedAt)
	}

	ui := queued[0]
	if ui.Id != "Page 0" || ui.Index != DefaultIndex || ui.Type != "page" {
		t.Fatalf("Unexpected instruction: %+v", ui)
	}
	body := ui.Body
	if body["outcome"] != "converted" || !reflect.DeepEqual(body["file_urls"], []string{"u"}) {
		t.Fatalf("Unexpected body: %v", body)
	}
}

func TestElasticSearchFlushError(t *testing.T) {
	quit := false
	es := &ElasticSearch{
		index:  DefaultIndex,
		update: func(*elasticsearch.UpdateInstruction) {},
		flush:  func() error { return errors.New("HTTP error:  500") },
		quit:   func() { quit = true },
	}
	for i := 0; i < esBatchSize-1; i++ {
		if err := es.Record(&wikihtml.Entry{Title: "x"}); err != nil {
			t.Fatalf("Unexpected error before a batch was sent: %v", err)
		}
	}
	if err := es.Record(&wikihtml.Entry{Title: "x"}); err == nil {
		t.Fatalf("Expected the batch error reported")
	}
	if err := es.Record(&wikihtml.Entry{Title: "x"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := es.Close(); err == nil || !quit {
		t.Fatalf("Expected the final batch error and a stopped loader, got %v, %v", err, quit)
	}
}
