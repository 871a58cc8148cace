// Package wikihtml turns a MediaWiki XML dump into a tree of static
// HTML files.
//
// Every page lands at a path derived from the SHA-1 of its title, so a
// link to another page can be rewritten to that page's file without
// any lookup table:
//
//    out/ce/cebe54c7626cb1cefaca5f7f5ea6c96b4a7a2882.html  <- "Cat"
//
// Markup is converted by an external engine (pandoc by default), one
// page at a time, while the dump is streamed so that dumps much larger
// than memory can be processed.
//
// The dumps are available from the wikimedia group here:
//    http://dumps.wikimedia.org/
//
// See tools/wikidump2html for the command line program.
package wikihtml
