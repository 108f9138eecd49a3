package words

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/MuraliDhar-731/Hangman/assets"
)

// Origin names the table a Source reads from.
type Origin string

const (
	OriginSQLite   Origin = "sqlite"
	OriginCSV      Origin = "csv"
	OriginEmbedded Origin = "embedded"
)

// Open picks the first usable word table: the SQLite database at dbPath,
// then the CSV file at csvPath, then the embedded table. Empty paths are
// skipped. The returned func releases the source.
func Open(dbPath, csvPath string) (Source, Origin, func()) {
	if dbPath != "" {
		db, err := OpenSQLite(dbPath)
		if err == nil {
			log.Info().Str("db", dbPath).Msg("words from sqlite")
			return NewSQLSource(db), OriginSQLite, func() { _ = db.Close() }
		}
		log.Warn().Err(err).Str("db", dbPath).Msg("word database unavailable")
	}
	if csvPath != "" {
		_, err := os.Stat(csvPath)
		if err == nil {
			log.Info().Str("file", csvPath).Msg("words from csv")
			return NewCSVFile(csvPath), OriginCSV, func() {}
		}
		log.Warn().Err(err).Str("file", csvPath).Msg("word file unavailable")
	}
	return NewCSVSource(assets.FS, assets.WordTable), OriginEmbedded, func() {}
}
