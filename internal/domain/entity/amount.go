package entity

import (
	"encoding/json"
	"strconv"
)

// Amount is a numeric-or-empty JSON scalar. Rate and stock-reading fields
// hold either "" (not filled in) or a number, and clients send them as
// numbers, numeric strings, or null. Amount accepts all of those on the way
// in and normalizes to a string on the way out, so "" survives round trips
// and 5 and "5" are the same value.
type Amount string

// IsEmpty reports whether the amount holds no value.
func (a Amount) IsEmpty() bool {
	return a == ""
}

// Float64 returns the numeric value, or 0 when empty or non-numeric.
func (a Amount) Float64() float64 {
	v, err := strconv.ParseFloat(string(a), 64)
	if err != nil {
		return 0
	}
	return v
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}
