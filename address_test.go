package wikihtml

import (
	"strings"
	"testing"
)

func TestAddressKnownVectors(t *testing.T) {
	tests := []struct {
		title string
		exp   string
	}{
		{"Cat", "ce/cebe54c7626cb1cefaca5f7f5ea6c96b4a7a2882.html"},
		{"Test", "64/640ab2bae07bedc4c163f679a746f7ab7fb5d1fa.html"},
		{"World", "70/70c07ec18ef89c5309bbb0937f3a6342411e1fdd.html"},
		{"Some Page", "cb/cb0c65ff996ef56e01bdc25fa85d133945965b00.html"},
	}

	for _, test := range tests {
		got := Address(test.title)
		if got != test.exp {
			t.Fatalf("Expected %v for %q, got %v", test.exp, test.title, got)
		}
	}
}

func TestAddressStable(t *testing.T) {
	for _, title := range []string{"", "Cat", "Zrínyi Miklós", "a/b", "日本"} {
		first := Address(title)
		for i := 0; i < 3; i++ {
			if got := Address(title); got != first {
				t.Fatalf("Address(%q) changed from %v to %v", title, first, got)
			}
		}
	}
}

func TestAddressShape(t *testing.T) {
	seen := map[string]string{}
	for _, title := range []string{"Cat", "cat", "Cat ", "Cats", "Dog", "", "Île"} {
		a := Address(title)
		if prev, ok := seen[a]; ok {
			t.Fatalf("%q and %q both address to %v", prev, title, a)
		}
		seen[a] = title

		parts := strings.Split(a, "/")
		if len(parts) != 2 {
			t.Fatalf("Expected two path segments in %v", a)
		}
		if len(parts[1]) != 40+len(Extension) {
			t.Fatalf("Expected a 40 hex digit name in %v", a)
		}
		if !strings.HasPrefix(parts[1], parts[0]) {
			t.Fatalf("Expected directory %v to prefix %v", parts[0], parts[1])
		}
		if strings.ToLower(a) != a {
			t.Fatalf("Expected lowercase hex in %v", a)
		}
	}
}
