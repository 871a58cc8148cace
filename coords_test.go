package wikihtml

import (
	"math"
	"testing"
)

type coordInput struct {
	input string
	lon   float64
	lat   float64
}

var coordData = []coordInput{
	{"{{coord|57|18|22|N|4|27|32|W|display=title}}",
		-(4 + 27.0/60 + 32.0/3600),
		57 + 18.0/60 + 22.0/3600,
	},
	{"{{coord|44.112|N|87.913|W|display=title}}",
		-87.913,
		44.112,
	},
	{"{{Coord|44.112|-87.913}}",
		-87.913,
		44.112,
	},
	{"{{coord|33.9|S|18.4|E}}",
		18.4,
		-33.9,
	},
	{"{{coord|type:landmark|51.5007|-0.1246}}",
		-0.1246,
		51.5007,
	},
}

func assertEpsilon(t *testing.T, input, field string, expected, got float64) {
	if math.Abs(got-expected) > 0.00001 {
		t.Fatalf("Expected %v for %v of %v, got %v",
			expected, field, input, got)
	}
}

func testOneCoord(t *testing.T, ci coordInput, input string) {
	geo, err := FindCoord(input)
	if err != nil {
		t.Fatalf("Error on %v: %v", input, err)
	}
	assertEpsilon(t, input, "lon", ci.lon, geo.Lon)
	assertEpsilon(t, input, "lat", ci.lat, geo.Lat)
}

func TestCoordSimple(t *testing.T) {
	for _, ci := range coordData {
		testOneCoord(t, ci, ci.input)
	}
}

func TestCoordWithGarbage(t *testing.T) {
	for _, ci := range coordData {
		testOneCoord(t, ci, " some random garbage "+ci.input+" and stuff")
	}
}

func TestCoordMultiline(t *testing.T) {
	for _, ci := range coordData {
		testOneCoord(t, ci, " some random garbage\n\nnewlines\n"+ci.input+" and stuff")
	}
}

func TestCoordMissing(t *testing.T) {
	for _, input := range []string{
		"",
		"no coordinates at all",
		"<!-- {{coord|44.112|-87.913}} -->",
		"<nowiki>{{coord|44.112|-87.913}}</nowiki>",
		"{{coord|display=title}}",
	} {
		_, err := FindCoord(input)
		if err != ErrNoCoord {
			t.Fatalf("Expected ErrNoCoord for %q, got %v", input, err)
		}
	}
}

func TestCoordOutOfRange(t *testing.T) {
	for _, input := range []string{
		"{{coord|95|0}}",
		"{{coord|45|190}}",
	} {
		_, err := FindCoord(input)
		if err == nil || err == ErrNoCoord {
			t.Fatalf("Expected a range error for %q, got %v", input, err)
		}
	}
}
