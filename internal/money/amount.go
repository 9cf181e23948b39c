package money

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a request value in cents. It decodes from a JSON integer holding
// cents or from a localized string such as "R$ 1.000,50".
type Amount int64

// Cents returns the amount as int64 cents.
func (a Amount) Cents() int64 { return int64(a) }

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		cents, err := Parse(s)
		if err != nil {
			return err
		}
		*a = Amount(cents)
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	if !d.IsInteger() {
		return fmt.Errorf("%w: numeric amounts are whole cents", ErrInvalidAmount)
	}
	cents, err := wholeCents(d)
	if err != nil {
		return err
	}
	*a = Amount(cents)
	return nil
}
