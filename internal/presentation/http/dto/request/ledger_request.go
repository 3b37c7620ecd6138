package request

import (
	"github.com/eggmandi/ledger-api/internal/domain/entity"
)

// SaveEntriesRequest is the body of POST /api/entries. NECC and every row
// field except location are optional: a field left out of the JSON keeps its
// stored value.
type SaveEntriesRequest struct {
	Date string     `json:"date"`
	NECC NullAmount `json:"necc"`
	Rows []RowPatch `json:"rows"`
}

// NullAmount distinguishes a key that is present — even as JSON null — from
// one that is omitted. Omitted keeps the stored value; present replaces it,
// with null clearing it to the empty amount.
type NullAmount struct {
	Set   bool
	Value entity.Amount
}

func (n *NullAmount) UnmarshalJSON(data []byte) error {
	n.Set = true
	return n.Value.UnmarshalJSON(data)
}

// RowPatch is a partial update for one location's row.
type RowPatch struct {
	Location string         `json:"location"`
	Opening  *entity.Amount `json:"opening"`
	Qty      *float64       `json:"qty"`
	Closing  *entity.Amount `json:"closing"`
	NECCRate *entity.Amount `json:"neccRate"`
	PhonePe  *float64       `json:"phonepe"`
	Cash     *float64       `json:"cash"`
}
