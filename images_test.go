package wikihtml

import (
	"reflect"
	"testing"
)

func TestImageSearch(t *testing.T) {
	exp := []string{"Tide pools sponge.jpg",
		"Spongilla lacustris.jpg",
		"Sponges.JPG",
	}
	found := FindFiles(sponge)

	if !reflect.DeepEqual(exp, found) {
		t.Fatalf("Expected %#v, got %#v", exp, found)
	}
}

func TestImageUrling(t *testing.T) {
	tests := []struct {
		src string
		exp string
	}{
		{
			"BoredEncrustedShell.JPG",
			"http://upload.wikimedia.org/wikipedia/commons/1/10/BoredEncrustedShell.JPG",
		},
		{
			"AURI B-25.jpg",
			"http://upload.wikimedia.org/wikipedia/commons/9/93/AURI_B-25.jpg",
		},
	}

	for _, test := range tests {
		got := URLForFile(test.src)
		if got != test.exp {
			t.Fatalf("Expected %v, got %v", test.exp, got)
		}
	}
}

func TestMediaRef(t *testing.T) {
	tests := []struct {
		in  string
		exp bool
	}{
		{"File:Foo.png", true},
		{"Image:Foo.png", true},
		{"Files of Interest", false},
		{"Foo.png", false},
	}

	for _, test := range tests {
		if got := isMediaRef(test.in); got != test.exp {
			t.Fatalf("Expected %v for %q, got %v", test.exp, test.in, got)
		}
	}
}
