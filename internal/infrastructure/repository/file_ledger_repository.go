package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/eggmandi/ledger-api/internal/domain/entity"
	"github.com/eggmandi/ledger-api/internal/domain/repository"
)

const documentExt = ".json"

type fileLedgerRepository struct {
	fs   afero.Fs
	root string
}

// NewFileLedgerRepository creates a ledger repository that keeps one
// pretty-printed JSON document per date under root. The directory is created
// if it does not exist. Passing afero.NewMemMapFs() yields an in-memory store
// with identical behavior, which is how the tests run.
func NewFileLedgerRepository(fsys afero.Fs, root string) (repository.LedgerRepository, error) {
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &fileLedgerRepository{fs: fsys, root: root}, nil
}

func (r *fileLedgerRepository) path(date string) string {
	return filepath.Join(r.root, date+documentExt)
}

// Get reads the document for a date. Absence and malformed content both
// return (nil, nil): a document that cannot be parsed, or whose rows field is
// not an array, is logged and treated as if it were never written.
func (r *fileLedgerRepository) Get(ctx context.Context, date string) (*entity.DateRecord, error) {
	data, err := afero.ReadFile(r.fs, r.path(date))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var record entity.DateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: malformed ledger document for %s, falling back to defaults: %v", date, err)
		return nil, nil
	}
	if record.Rows == nil {
		log.Printf("Warning: ledger document for %s has no rows array, falling back to defaults", date)
		return nil, nil
	}
	return &record, nil
}

// Put replaces the document for record.Date. The data is written to a
// temporary file and renamed into place so a reader never observes a
// half-written document.
func (r *fileLedgerRepository) Put(ctx context.Context, record *entity.DateRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	target := r.path(record.Date)
	tmp := target + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, data, 0o644); err != nil {
		return err
	}
	if err := r.fs.Rename(tmp, target); err != nil {
		r.fs.Remove(tmp)
		return err
	}
	return nil
}

// ListDates returns every date with a persisted document, most recent first.
// ISO dates sort chronologically as strings, so a reverse lexicographic sort
// is sufficient.
func (r *fileLedgerRepository) ListDates(ctx context.Context) ([]string, error) {
	entries, err := afero.ReadDir(r.fs, r.root)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, documentExt) {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, documentExt))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}
