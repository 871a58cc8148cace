package wikihtml

// RevisionInfo describes the revision a page was rendered from.
type RevisionInfo struct {
	ID          uint64 `json:"id" bson:"id"`
	Timestamp   string `json:"timestamp" bson:"timestamp"`
	Contributor string `json:"contributor" bson:"contributor"`
	// ContributorID is the contributor's user id.
	ContributorID uint64 `json:"contributorid" bson:"contributorid"`
	Comment       string `json:"comment" bson:"comment"`
}

// An Entry records where a page was written and what was found in it.
type Entry struct {
	Title    string       `json:"title" bson:"title"`
	Path     string       `json:"path" bson:"path"`
	ID       uint64       `json:"pageid" bson:"pageid"`
	NS       int          `json:"ns" bson:"ns"`
	Redirect string       `json:"redirect,omitempty" bson:"redirect,omitempty"`
	RevInfo  RevisionInfo `json:"revinfo" bson:"revinfo"`
	Outcome  Outcome      `json:"outcome" bson:"outcome"`
	Attempts int          `json:"attempts" bson:"attempts"`
	Links    []string     `json:"links,omitempty" bson:"links,omitempty"`
	Files    []string     `json:"files,omitempty" bson:"files,omitempty"`
	FileURLs []string     `json:"file_urls,omitempty" bson:"file_urls,omitempty"`
	Geo      *Coord       `json:"geo,omitempty" bson:"geo,omitempty"`
}

// A Recorder keeps a catalog of the pages that were written.
type Recorder interface {
	Record(e *Entry) error
}

// NewEntry builds the catalog entry for a page and its conversion.
func NewEntry(p *Page, res Result) *Entry {
	text := p.Text()
	e := &Entry{
		Title:    p.Title,
		Path:     Address(p.Title),
		ID:       p.ID,
		NS:       p.NS,
		Redirect: p.RedirectTitle(),
		Outcome:  res.Outcome,
		Attempts: res.Attempts,
		Links:    FindLinks(text),
		Files:    FindFiles(text),
	}
	for _, f := range e.Files {
		e.FileURLs = append(e.FileURLs, URLForFile(f))
	}
	if r := p.Latest(); r != nil {
		e.RevInfo = RevisionInfo{
			ID:            r.ID,
			Timestamp:     r.Timestamp,
			Contributor:   r.Contributor.Username,
			ContributorID: r.Contributor.ID,
			Comment:       r.Comment,
		}
	}
	// A bad coord template isn't worth failing the page over.
	if c, err := FindCoord(text); err == nil {
		e.Geo = &c
	}
	return e
}
