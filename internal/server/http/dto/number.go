package dto

import (
	"bytes"
	"encoding/json"

	"github.com/polkiloo/vegdelivery/internal/usecase"
)

// Number accepts a JSON number or a numeric string. Anything unparsable
// becomes 0 instead of failing the request.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(usecase.ParseNumber(s))
		return nil
	}
	*n = Number(usecase.ParseNumber(string(data)))
	return nil
}

// Float returns the value as float64.
func (n Number) Float() float64 { return float64(n) }

// FloatPtr converts an optional Number.
func FloatPtr(n *Number) *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}
