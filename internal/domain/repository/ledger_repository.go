package repository

import (
	"context"

	"github.com/eggmandi/ledger-api/internal/domain/entity"
)

// LedgerRepository defines the interface for date-keyed ledger document access.
// Get returns (nil, nil) when no readable document exists for the date; a
// document that fails to parse counts as absent so callers can fall back to
// defaults. Put fully replaces the document for its date.
type LedgerRepository interface {
	Get(ctx context.Context, date string) (*entity.DateRecord, error)
	Put(ctx context.Context, record *entity.DateRecord) error
	ListDates(ctx context.Context) ([]string, error)
}
