package entity

// DefaultQty is the stock quantity assumed for a location until the operator
// enters a real figure.
const DefaultQty = 3000

// DateRecord is the persisted unit of state: every location's row plus the
// date-level default NECC rate for one calendar date. The date string is the
// partition key and never changes once the record exists.
type DateRecord struct {
	Date string        `json:"date"`
	NECC Amount        `json:"necc"`
	Rows []LocationRow `json:"rows"`
}

// LocationRow holds one location's stock readings and payment split within a
// DateRecord. Opening and closing are free-form readings and are not used in
// any server-side computation; a row with an empty NECCRate falls back to the
// record's NECC when clients compute profit.
type LocationRow struct {
	Location string  `json:"location"`
	Opening  Amount  `json:"opening"`
	Qty      float64 `json:"qty"`
	Closing  Amount  `json:"closing"`
	NECCRate Amount  `json:"neccRate"`
	PhonePe  float64 `json:"phonepe"`
	Cash     float64 `json:"cash"`
}

// DefaultRow returns the row synthesized for a location with no saved data.
func DefaultRow(location string) LocationRow {
	return LocationRow{
		Location: location,
		Opening:  "",
		Qty:      DefaultQty,
		Closing:  "",
		NECCRate: "",
		PhonePe:  0,
		Cash:     0,
	}
}

// RowsFor returns the rows whose location equals loc, preserving record
// order. The result is never nil so it serializes as a JSON array.
func (r *DateRecord) RowsFor(loc string) []LocationRow {
	rows := make([]LocationRow, 0, 1)
	for _, row := range r.Rows {
		if row.Location == loc {
			rows = append(rows, row)
		}
	}
	return rows
}

// DefaultRecord returns the record a date materializes as before anything has
// been saved for it: one default row per configured location, in order.
func DefaultRecord(date string, locations []string) *DateRecord {
	rows := make([]LocationRow, 0, len(locations))
	for _, loc := range locations {
		rows = append(rows, DefaultRow(loc))
	}
	return &DateRecord{
		Date: date,
		NECC: "",
		Rows: rows,
	}
}
