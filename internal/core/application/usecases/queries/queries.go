// Package queries contains read-only operations. Handlers read straight from
// the database and return flat views; nothing here goes through the domain
// aggregates or a unit of work.
package queries

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// normalizeLimit maps a missing or non-positive limit to DefaultLimit and
// caps the rest at MaxLimit.
func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// containsAny builds a case-insensitive substring match over columns.
// PostgreSQL needs ILIKE for that; SQLite and MySQL compare case-insensitively
// with plain LIKE.
func containsAny(db *gorm.DB, term string, columns ...string) (string, []any) {
	op := "LIKE"
	if db.Dialector.Name() == "postgres" {
		op = "ILIKE"
	}

	pattern := "%" + term + "%"
	parts := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		parts[i] = col + " " + op + " ?"
		args[i] = pattern
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

// splitList turns "a, b,,c" into [a b c].
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseBound reads a date (YYYY-MM-DD) or an RFC 3339 timestamp. A date used
// as an upper bound covers the whole day.
func parseBound(raw string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, err
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
