package wikihtml

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	coordRE   = regexp.MustCompile(`(?mi){{coord\|(.[^}]*)}}`)
	nowikiRE  = regexp.MustCompile(`(?ms)<nowiki>.*?</nowiki>`)
	commentRE = regexp.MustCompile(`(?ms)<!--.*?-->`)
)

// ErrNoCoord is returned by FindCoord when a page has no coordinates.
var ErrNoCoord = errors.New("no coord data found")

var errNotSexagesimal = errors.New("not a sexagesimal value")

// Coord is a point as found in a {{coord}} template.
type Coord struct {
	Lon float64 `json:"lon" bson:"lon"`
	Lat float64 `json:"lat" bson:"lat"`
}

// stripMarkupNoise drops comments and nowiki sections.
func stripMarkupNoise(text string) string {
	return nowikiRE.ReplaceAllString(commentRE.ReplaceAllString(text, ""), "")
}

// coordFields is the pipe separated argument list of a coord template,
// starting at its first number.
type coordFields []string

// degrees folds d|m|s|H into a signed decimal value.
func (f coordFields) degrees() (float64, error) {
	var rv float64
	for i, div := range []float64{1, 60, 3600} {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return 0, err
		}
		rv += v / div
	}
	if f[3] == "S" || f[3] == "W" {
		rv = -rv
	}
	return rv, nil
}

func (f coordFields) sexagesimal() (rv Coord, err error) {
	if len(f) < 8 || (f[3] != "N" && f[3] != "S") ||
		(f[7] != "E" && f[7] != "W") {
		return Coord{}, errNotSexagesimal
	}
	if rv.Lat, err = f[0:4].degrees(); err != nil {
		return Coord{}, err
	}
	rv.Lon, err = f[4:8].degrees()
	return rv, err
}

func (f coordFields) decimal() (rv Coord, err error) {
	if len(f) < 2 {
		return Coord{}, ErrNoCoord
	}

	i := 0
	if rv.Lat, err = strconv.ParseFloat(f[i], 64); err != nil {
		return Coord{}, err
	}
	i++
	switch f[i] {
	case "S":
		rv.Lat = -rv.Lat
		i++
	case "N":
		i++
	}
	if i >= len(f) {
		return Coord{}, ErrNoCoord
	}

	if rv.Lon, err = strconv.ParseFloat(f[i], 64); err != nil {
		return Coord{}, err
	}
	i++
	if i < len(f) && f[i] == "W" {
		rv.Lon = -rv.Lon
	}
	return rv, nil
}

// FindCoord parses the first geographical coordinate template in the
// given markup as specified in
// http://en.wikipedia.org/wiki/Wikipedia:WikiProject_Geographical_coordinates
func FindCoord(text string) (Coord, error) {
	m := coordRE.FindStringSubmatch(stripMarkupNoise(text))
	if len(m) < 2 {
		return Coord{}, ErrNoCoord
	}

	parts := strings.Split(m[1], "|")
	first := len(parts)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if first == len(parts) {
			if _, err := strconv.ParseFloat(parts[i], 64); err == nil {
				first = i
			}
		}
	}

	f := coordFields(parts[first:])
	rv, err := f.sexagesimal()
	if err != nil {
		rv, err = f.decimal()
	}
	if err != nil {
		return Coord{}, err
	}

	if math.Abs(rv.Lat) > 90 {
		return rv, errors.Errorf("invalid latitude: %v", rv.Lat)
	}
	if math.Abs(rv.Lon) > 180 {
		return rv, errors.Errorf("invalid longitude: %v", rv.Lon)
	}
	return rv, nil
}
