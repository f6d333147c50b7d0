package kernel_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodOf(t *testing.T) {
	t.Run("pads the month", func(t *testing.T) {
		assert.Equal(t, kernel.Period("202501"), kernel.PeriodOf(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("uses the UTC month boundary", func(t *testing.T) {
		bangkok := time.FixedZone("ICT", 7*60*60)
		// 2025-02-01 03:00 in Bangkok is still January in UTC.
		local := time.Date(2025, 2, 1, 3, 0, 0, 0, bangkok)
		assert.Equal(t, kernel.Period("202501"), kernel.PeriodOf(local))
	})
}

func TestParsePeriod(t *testing.T) {
	p, err := kernel.ParsePeriod("202512")
	require.NoError(t, err)
	assert.Equal(t, "202512", p.String())

	for _, bad := range []string{"", "2025", "202513", "20251a", "2025-01"} {
		_, err = kernel.ParsePeriod(bad)
		require.ErrorIs(t, err, errs.ErrValidation, bad)
	}
}
