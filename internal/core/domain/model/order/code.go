package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Code is the human-readable order code shown to customers and staff.
type Code string

// NewCode formats the n-th number of a period as "N-" followed by n padded to at
// least four digits: 1 -> N-0001, 10234 -> N-10234.
func NewCode(n int64) (Code, error) {
	if n < 1 {
		return "", errs.NewValueIsOutOfRangeError("order_number", n, 1, "unbounded")
	}
	return Code(fmt.Sprintf("N-%04d", n)), nil
}

func (c Code) String() string {
	return string(c)
}
