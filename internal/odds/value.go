package odds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is decimal odds decoded from either a JSON number (2.5) or a
// JSON string in any format Parse accepts ("+150", "5/2", "2.5").
type Value float64

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidOdds)
	}

	var text string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOdds, err)
		}
	} else {
		text = string(data)
	}

	decimal, err := Parse(text)
	if err != nil {
		return err
	}
	*v = Value(decimal)
	return nil
}

// MarshalJSON encodes the odds as a JSON number.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(v), 'f', -1, 64)), nil
}
