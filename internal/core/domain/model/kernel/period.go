package kernel

import (
	"fmt"
	"time"

	"orderdesk/internal/pkg/errs"
)

// Period is a year-month key formatted as YYYYMM. Order-code numbering restarts
// whenever the UTC month changes.
type Period string

// PeriodOf returns the period containing t, evaluated in UTC.
func PeriodOf(t time.Time) Period {
	u := t.UTC()
	return Period(fmt.Sprintf("%04d%02d", u.Year(), int(u.Month())))
}

// ParsePeriod validates a YYYYMM string.
func ParsePeriod(s string) (Period, error) {
	if len(s) != 6 {
		return "", errs.NewValueIsInvalidErrorWithCause("period", fmt.Errorf("%q is not YYYYMM", s))
	}
	if _, err := time.Parse("200601", s); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("period", err)
	}
	return Period(s), nil
}

func (p Period) String() string {
	return string(p)
}
