package catalog

import (
	"github.com/dustin/go-wikihtml"
	"github.com/pkg/errors"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// Titles are unique; a rerun replaces the entry in place.
var titleIndex = mgo.Index{
	Key:        []string{"title"},
	Unique:     true,
	DropDups:   true,
	Background: true,
	Sparse:     true,
}

// Mongo is a catalog in a mongodb collection.
type Mongo struct {
	session *mgo.Session
	c       *mgo.Collection
}

// OpenMongo dials dburl and makes sure the collection has its title
// index.
func OpenMongo(dburl, dbname, collection string) (*Mongo, error) {
	if dbname == "" {
		dbname = "wp"
	}
	if collection == "" {
		collection = "pages"
	}
	session, err := mgo.Dial(dburl)
	if err != nil {
		return nil, errors.Wrap(err, "dialing mongodb")
	}
	c := session.DB(dbname).C(collection)
	if err := c.EnsureIndex(titleIndex); err != nil {
		session.Close()
		return nil, errors.Wrap(err, "creating title index")
	}
	return &Mongo{session: session, c: c}, nil
}

// Record upserts the entry by title.
func (m *Mongo) Record(e *wikihtml.Entry) error {
	_, err := m.c.Upsert(bson.M{"title": e.Title}, e)
	return errors.Wrapf(err, "upserting %q", e.Title)
}

// Close ends the session.
func (m *Mongo) Close() error {
	m.session.Close()
	return nil
}
