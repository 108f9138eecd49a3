// Package assets bundles the default word table.
//
// words.csv has a header row with at least the columns "word" and
// "difficulty"; it is served through words.NewCSVSource(FS, WordTable).
package assets

import "embed"

// WordTable is the file name of the bundled table inside FS.
const WordTable = "words.csv"

//go:embed words.csv
var FS embed.FS
