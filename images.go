package wikihtml

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"
)

var fileRE = regexp.MustCompile(`\[(?:File|Image):([^\|\]]+)`)

// Namespaces whose links point at media rather than pages.
var mediaPrefixes = []string{"File:", "Image:"}

func isMediaRef(s string) bool {
	for _, p := range mediaPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// FindFiles finds all the File and Image references from within an
// article body.
//
// This includes things in comments, as many are commented out.
func FindFiles(text string) []string {
	cleaned := nowikiRE.ReplaceAllString(text, "")
	matches := fileRE.FindAllStringSubmatch(cleaned, -1)

	rv := []string{}
	for _, x := range matches {
		rv = append(rv, strings.TrimSpace(x[1]))
	}

	return rv
}

// URLForFile gets the wikimedia commons URL for the given named file.
func URLForFile(name string) string {
	name = strings.Replace(name, " ", "_", -1)
	sum := md5.Sum([]byte(name))
	h := hex.EncodeToString(sum[:])

	return "http://upload.wikimedia.org/wikipedia/commons/" +
		h[0:1] + "/" + h[0:2] + "/" + url.QueryEscape(name)
}
