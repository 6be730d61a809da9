package quotation

import (
	"math"
	"strconv"
	"strings"
)

// Number is a lenient numeric field. Form-submitted payloads carry
// quantities and rates as JSON numbers or as strings, and an in-progress
// form may send garbage; decoding never fails. Valid is false when the
// input could not be parsed, so callers can distinguish "0" from "absent
// or malformed" and apply their own default.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.Value = 0
	n.Valid = false

	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.Value = v
	n.Valid = true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// Or returns the parsed value, or def when the field was absent or
// malformed.
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}
