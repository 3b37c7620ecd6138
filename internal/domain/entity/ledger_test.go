package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/eggmandi/ledger-api/internal/domain/entity"
)

func TestDefaultRecord(t *testing.T) {
	locations := []string{"AECS LAYOUT", "BANDEPALYA", "HOSA ROAD"}

	record := entity.DefaultRecord("2024-01-01", locations)

	if record.Date != "2024-01-01" {
		t.Errorf("date = %q, want 2024-01-01", record.Date)
	}
	if !record.NECC.IsEmpty() {
		t.Errorf("necc = %q, want empty", record.NECC)
	}
	if len(record.Rows) != len(locations) {
		t.Fatalf("rows = %d, want %d", len(record.Rows), len(locations))
	}
	for i, row := range record.Rows {
		if row.Location != locations[i] {
			t.Errorf("rows[%d].Location = %q, want %q", i, row.Location, locations[i])
		}
		if row.Qty != entity.DefaultQty {
			t.Errorf("rows[%d].Qty = %v, want %v", i, row.Qty, entity.DefaultQty)
		}
		if row.PhonePe != 0 || row.Cash != 0 {
			t.Errorf("rows[%d] payments = (%v, %v), want zeros", i, row.PhonePe, row.Cash)
		}
		if !row.Opening.IsEmpty() || !row.Closing.IsEmpty() || !row.NECCRate.IsEmpty() {
			t.Errorf("rows[%d] readings not empty: %+v", i, row)
		}
	}
}

func TestRowsFor(t *testing.T) {
	record := entity.DefaultRecord("2024-01-01", []string{"A", "B"})

	rows := record.RowsFor("B")
	if len(rows) != 1 || rows[0].Location != "B" {
		t.Fatalf("RowsFor(B) = %+v, want single B row", rows)
	}

	rows = record.RowsFor("MISSING")
	if rows == nil {
		t.Fatal("RowsFor(MISSING) = nil, want empty slice")
	}
	if len(rows) != 0 {
		t.Fatalf("RowsFor(MISSING) = %+v, want empty", rows)
	}
}

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want entity.Amount
	}{
		{"numeric string", `"5"`, "5"},
		{"integer", `5`, "5"},
		{"decimal", `5.25`, "5.25"},
		{"empty string", `""`, ""},
		{"null", `null`, ""},
		{"free text", `"n/a"`, "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a entity.Amount
			if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if a != tt.want {
				t.Errorf("got %q, want %q", a, tt.want)
			}
		})
	}
}

func TestAmountMarshal(t *testing.T) {
	tests := []struct {
		name string
		in   entity.Amount
		want string
	}{
		{"empty marshals as empty string", "", `""`},
		{"numeric text marshals as string", "5.25", `"5.25"`},
		{"free text marshals quoted", "n/a", `"n/a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("marshal %q: %v", tt.in, err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAmountRecordRoundTrip(t *testing.T) {
	// The wire shape the frontend sends: necc as a string, rates mixed.
	in := []byte(`{"date":"2024-01-01","necc":"5.1","rows":[{"location":"A","opening":12,"qty":10,"closing":"","neccRate":"4.9","phonepe":100,"cash":50}]}`)

	var record entity.DateRecord
	if err := json.Unmarshal(in, &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if record.NECC != "5.1" {
		t.Errorf("necc = %q, want 5.1", record.NECC)
	}
	if record.Rows[0].Opening != "12" {
		t.Errorf("opening = %q, want 12", record.Rows[0].Opening)
	}
	if record.Rows[0].NECCRate.Float64() != 4.9 {
		t.Errorf("neccRate = %v, want 4.9", record.Rows[0].NECCRate.Float64())
	}
}
