package commands

import (
	"time"

	"go.uber.org/zap"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
