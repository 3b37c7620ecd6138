package service

import (
	"github.com/eggmandi/ledger-api/internal/domain/entity"
)

// reconcile produces a location-complete record from the existing record plus
// an incoming partial row set. Patches are merged by location (incoming fields
// win, omitted fields retain prior values); the output always holds exactly
// one row per configured location, in configured order. Patches with an empty
// location are discarded, patches for unconfigured locations never appear in
// the output, and duplicate locations in the input overwrite each other with
// the last one winning.
func (s *LedgerService) reconcile(existing *entity.DateRecord, input *SaveEntriesInput) *entity.DateRecord {
	byLocation := make(map[string]entity.LocationRow, len(existing.Rows))
	for _, row := range existing.Rows {
		byLocation[row.Location] = row
	}

	for _, patch := range input.Rows {
		if patch.Location == "" {
			continue
		}
		row, ok := byLocation[patch.Location]
		if !ok {
			row = entity.DefaultRow(patch.Location)
		}
		patch.apply(&row)
		byLocation[patch.Location] = row
	}

	rows := make([]entity.LocationRow, 0, len(s.locations))
	for _, loc := range s.locations {
		row, ok := byLocation[loc]
		if !ok {
			row = entity.DefaultRow(loc)
		}
		rows = append(rows, row)
	}

	necc := existing.NECC
	if input.NECC != nil {
		necc = *input.NECC
	}

	return &entity.DateRecord{
		Date: input.Date,
		NECC: necc,
		Rows: rows,
	}
}

// apply shallow-merges the set fields of the patch onto the row.
func (p RowPatch) apply(row *entity.LocationRow) {
	row.Location = p.Location
	if p.Opening != nil {
		row.Opening = *p.Opening
	}
	if p.Qty != nil {
		row.Qty = *p.Qty
	}
	if p.Closing != nil {
		row.Closing = *p.Closing
	}
	if p.NECCRate != nil {
		row.NECCRate = *p.NECCRate
	}
	if p.PhonePe != nil {
		row.PhonePe = *p.PhonePe
	}
	if p.Cash != nil {
		row.Cash = *p.Cash
	}
}
