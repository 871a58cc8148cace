package catalog

import (
	"database/sql"
	"encoding/json"

	"github.com/dustin/go-wikihtml"
	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

// DefaultSQLiteFile is used when no path is given for a sqlite catalog.
const DefaultSQLiteFile = "catalog.db"

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS pages (
    title TEXT PRIMARY KEY,
    path TEXT NOT NULL,
    page_id INTEGER,
    ns INTEGER,
    redirect TEXT,
    rev_id INTEGER,
    rev_timestamp TEXT,
    contributor TEXT,
    outcome TEXT NOT NULL,
    attempts INTEGER NOT NULL,
    links TEXT,   -- JSON array
    files TEXT,   -- JSON array
    file_urls TEXT,   -- JSON array
    lat REAL,
    lon REAL
);

CREATE INDEX IF NOT EXISTS idx_pages_path ON pages(path);
CREATE INDEX IF NOT EXISTS idx_pages_redirect ON pages(redirect) WHERE redirect IS NOT NULL;
`

const upsertPage = `
INSERT INTO pages (title, path, page_id, ns, redirect, rev_id, rev_timestamp,
    contributor, outcome, attempts, links, files, file_urls, lat, lon)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(title) DO UPDATE SET
    path = excluded.path,
    page_id = excluded.page_id,
    ns = excluded.ns,
    redirect = excluded.redirect,
    rev_id = excluded.rev_id,
    rev_timestamp = excluded.rev_timestamp,
    contributor = excluded.contributor,
    outcome = excluded.outcome,
    attempts = excluded.attempts,
    links = excluded.links,
    files = excluded.files,
    file_urls = excluded.file_urls,
    lat = excluded.lat,
    lon = excluded.lon`

// SQLite is a catalog in a local SQLite database, one row per title.
type SQLite struct {
	db   *sql.DB
	stmt *sql.Stmt
}

// OpenSQLite opens or creates a catalog database at path.  ":memory:"
// works too.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = DefaultSQLiteFile
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening catalog")
	}
	// Keeps ":memory:" to one database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating catalog schema")
	}
	stmt, err := db.Prepare(upsertPage)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "preparing catalog insert")
	}
	return &SQLite{db: db, stmt: stmt}, nil
}

func jsonList(l []string) (interface{}, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// Record inserts or replaces the entry for e.Title.
func (s *SQLite) Record(e *wikihtml.Entry) error {
	links, err := jsonList(e.Links)
	if err != nil {
		return err
	}
	files, err := jsonList(e.Files)
	if err != nil {
		return err
	}
	fileURLs, err := jsonList(e.FileURLs)
	if err != nil {
		return err
	}
	var lat, lon interface{}
	if e.Geo != nil {
		lat, lon = e.Geo.Lat, e.Geo.Lon
	}

	_, err = s.stmt.Exec(e.Title, e.Path, int64(e.ID), e.NS, nullString(e.Redirect),
		int64(e.RevInfo.ID), e.RevInfo.Timestamp, e.RevInfo.Contributor,
		e.Outcome.String(), e.Attempts, links, files, fileURLs, lat, lon)
	return errors.Wrapf(err, "recording %q", e.Title)
}

// Lookup gets the catalogued path of a title.
func (s *SQLite) Lookup(title string) (string, bool, error) {
	var p string
	err := s.db.QueryRow("SELECT path FROM pages WHERE title = ?", title).Scan(&p)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "looking up %q", title)
	}
	return p, true, nil
}

// Count gets how many titles are catalogued.
func (s *SQLite) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM pages").Scan(&n)
	return n, errors.Wrap(err, "counting pages")
}

// Close releases the database.
func (s *SQLite) Close() error {
	if err := s.stmt.Close(); err != nil {
		_ = s.db.Close()
		return err
	}
	return s.db.Close()
}
