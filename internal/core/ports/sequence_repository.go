package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
)

// SequenceRepository hands out order numbers per period.
type SequenceRepository interface {
	// Next reserves and returns the next number of period, starting at 1.
	// It must run inside the caller's transaction: the counter row stays
	// locked until that transaction ends, and a rollback returns the number.
	Next(ctx context.Context, period kernel.Period) (int64, error)
}
