package wikihtml

import "strings"

// Table delimiters whose trailing attributes FixTables discards.
var tableDelims = []string{"{|", "|-"}

// FixTables strips the styling from wiki table start and row lines,
// leaving the bare delimiter.
//
// Inline table attributes are the most common reason an engine gives
// up on an otherwise fine page.  Text without such lines comes back
// unchanged, and FixTables(FixTables(s)) == FixTables(s).
func FixTables(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, d := range tableDelims {
			if strings.HasPrefix(line, d) {
				lines[i] = d
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
