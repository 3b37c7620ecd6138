package repository_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/eggmandi/ledger-api/internal/domain/entity"
	"github.com/eggmandi/ledger-api/internal/domain/repository"
	infra "github.com/eggmandi/ledger-api/internal/infrastructure/repository"
)

func newRepo(t *testing.T) (repository.LedgerRepository, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	repo, err := infra.NewFileLedgerRepository(fs, "storage")
	if err != nil {
		t.Fatalf("NewFileLedgerRepository: %v", err)
	}
	return repo, fs
}

func TestGetAbsentDate(t *testing.T) {
	repo, _ := newRepo(t)

	record, err := repo.Get(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if record != nil {
		t.Fatalf("Get absent date = %+v, want nil", record)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	record := entity.DefaultRecord("2024-01-01", []string{"A", "B"})
	record.NECC = "5.2"
	record.Rows[1].Cash = 150

	if err := repo.Put(ctx, record); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := repo.Get(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got, record) {
		t.Errorf("roundtrip mismatch:\ngot  %+v\nwant %+v", got, record)
	}
}

func TestPutOverwritesPrevious(t *testing.T) {
	repo, fs := newRepo(t)
	ctx := context.Background()

	first := entity.DefaultRecord("2024-01-01", []string{"A"})
	if err := repo.Put(ctx, first); err != nil {
		t.Fatalf("Put: %v", err)
	}

	second := entity.DefaultRecord("2024-01-01", []string{"A"})
	second.NECC = "6"
	if err := repo.Put(ctx, second); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	got, err := repo.Get(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.NECC != "6" {
		t.Errorf("necc = %q, want 6", got.NECC)
	}

	// No temp files may survive a completed write.
	entries, err := afero.ReadDir(fs, "storage")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", entry.Name())
		}
	}
}

func TestMalformedDocumentTreatedAsAbsent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unparseable", `{"date": "2024-01-02",`},
		{"rows missing", `{"date":"2024-01-02","necc":"4"}`},
		{"rows not an array", `{"date":"2024-01-02","necc":"4","rows":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, fs := newRepo(t)
			if err := afero.WriteFile(fs, "storage/2024-01-02.json", []byte(tt.content), 0o644); err != nil {
				t.Fatalf("seed file: %v", err)
			}

			record, err := repo.Get(context.Background(), "2024-01-02")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if record != nil {
				t.Errorf("malformed document returned %+v, want nil", record)
			}
		})
	}
}

func TestListDatesDescending(t *testing.T) {
	repo, fs := newRepo(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-02", "2023-12-31", "2024-02-01"} {
		if err := repo.Put(ctx, entity.DefaultRecord(date, []string{"A"})); err != nil {
			t.Fatalf("Put %s: %v", date, err)
		}
	}
	// Stray content in the storage directory is not a date.
	if err := afero.WriteFile(fs, "storage/notes.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("seed stray file: %v", err)
	}
	if err := fs.MkdirAll("storage/archive", 0o755); err != nil {
		t.Fatalf("seed stray dir: %v", err)
	}

	dates, err := repo.ListDates(ctx)
	if err != nil {
		t.Fatalf("ListDates: %v", err)
	}

	want := []string{"2024-02-01", "2024-01-02", "2023-12-31"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("dates = %v, want %v", dates, want)
	}
}

func TestListDatesEmptyStore(t *testing.T) {
	repo, _ := newRepo(t)

	dates, err := repo.ListDates(context.Background())
	if err != nil {
		t.Fatalf("ListDates: %v", err)
	}
	if len(dates) != 0 {
		t.Errorf("dates = %v, want empty", dates)
	}
}
