package words

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source serves the candidate words of one tier.
// Implementations wrap ErrWordSourceUnavailable for missing or unusable
// data and for a tier with no entries.
type Source interface {
	Words(ctx context.Context, d Difficulty) ([]string, error)
}

// CSVSource reads a comma-separated word table with at least the columns
// "word" and "difficulty" (header row, any order, case-insensitive).
// The file is read on every call.
type CSVSource struct {
	fsys fs.FS
	name string
}

// NewCSVSource reads the table name from fsys.
func NewCSVSource(fsys fs.FS, name string) *CSVSource {
	return &CSVSource{fsys: fsys, name: name}
}

// NewCSVFile reads the table from a path on the local disk.
func NewCSVFile(path string) *CSVSource {
	return NewCSVSource(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Words returns every word tagged d, in file order.
func (s *CSVSource) Words(ctx context.Context, d Difficulty) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.fsys.Open(s.name)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrWordSourceUnavailable, s.name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", ErrWordSourceUnavailable, s.name, err)
	}
	wordCol, tierCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "word":
			wordCol = i
		case "difficulty":
			tierCol = i
		}
	}
	if wordCol < 0 || tierCol < 0 {
		return nil, fmt.Errorf("%w: %s lacks word/difficulty columns", ErrWordSourceUnavailable, s.name)
	}

	var out []string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrWordSourceUnavailable, s.name, err)
		}
		if wordCol >= len(rec) || tierCol >= len(rec) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(rec[tierCol]), string(d)) {
			continue
		}
		if w, ok := normalize(rec[wordCol]); ok {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no %s words in %s", ErrWordSourceUnavailable, d, s.name)
	}
	return out, nil
}
