package wikihtml

import (
	"crypto/sha1"
	"encoding/hex"
	"path"
)

// Extension is appended to every addressed file.
const Extension = ".html"

// Address gets the relative path for the page with the given title.
//
// The path is the lowercase hex SHA-1 of the title's UTF-8 bytes plus
// Extension, inside a directory named after its first two hex
// characters.  Separators are always forward slashes.
func Address(title string) string {
	sum := sha1.Sum([]byte(title))
	name := hex.EncodeToString(sum[:]) + Extension
	return path.Join(name[:2], name)
}
