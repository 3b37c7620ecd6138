package service

import (
	"context"
	"time"

	"github.com/eggmandi/ledger-api/internal/domain/entity"
	"github.com/eggmandi/ledger-api/internal/domain/repository"
	"github.com/eggmandi/ledger-api/pkg/apperror"
)

// LedgerService handles the daily-ledger business logic: default synthesis on
// read, reconcile-and-replace on save. The configured location list is
// injected at construction and fixes both the membership and the order of the
// rows in every record the service returns.
type LedgerService struct {
	ledgerRepo repository.LedgerRepository
	locations  []string
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo repository.LedgerRepository, locations []string) *LedgerService {
	return &LedgerService{
		ledgerRepo: ledgerRepo,
		locations:  locations,
	}
}

// Get retrieves the record for a date, synthesizing the full default record
// when nothing has been saved yet. Absence is never an error; only an actual
// read fault surfaces, as a persistence error.
func (s *LedgerService) Get(ctx context.Context, date string) (*entity.DateRecord, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	record, err := s.ledgerRepo.Get(ctx, date)
	if err != nil {
		return nil, apperror.NewPersistenceError("read_failed", err)
	}
	if record == nil {
		record = entity.DefaultRecord(date, s.locations)
	}
	return record, nil
}

// SaveEntriesInput represents the input for saving a date's entries. NECC and
// the patch fields are pointers so an omitted field is distinguishable from an
// explicit zero: omitted fields keep whatever is already stored.
type SaveEntriesInput struct {
	Date string
	NECC *entity.Amount
	Rows []RowPatch
}

// RowPatch is a partial update for one location's row.
type RowPatch struct {
	Location string
	Opening  *entity.Amount
	Qty      *float64
	Closing  *entity.Amount
	NECCRate *entity.Amount
	PhonePe  *float64
	Cash     *float64
}

// Save reconciles the incoming rows against the stored record for the date
// and persists the merged result, fully replacing the previous document. The
// returned record is exactly what a subsequent Get will observe.
func (s *LedgerService) Save(ctx context.Context, input *SaveEntriesInput) (*entity.DateRecord, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	existing, err := s.ledgerRepo.Get(ctx, input.Date)
	if err != nil {
		return nil, apperror.NewPersistenceError("read_failed", err)
	}
	if existing == nil {
		existing = entity.DefaultRecord(input.Date, s.locations)
	}

	merged := s.reconcile(existing, input)
	if err := s.ledgerRepo.Put(ctx, merged); err != nil {
		return nil, apperror.NewPersistenceError("save_failed", err)
	}
	return merged, nil
}

// ListDates returns every date with a saved record, most recent first.
func (s *LedgerService) ListDates(ctx context.Context) ([]string, error) {
	dates, err := s.ledgerRepo.ListDates(ctx)
	if err != nil {
		return nil, apperror.NewPersistenceError("list_failed", err)
	}
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

// validateDate rejects a missing or non-ISO date. The date string names the
// document on disk, so anything that does not look like YYYY-MM-DD must be
// refused before it reaches the storage layer.
func validateDate(date string) error {
	if date == "" {
		return apperror.ErrMissingDate
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperror.ErrInvalidDate
	}
	return nil
}
