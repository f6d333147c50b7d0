package queries

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetHealthQueryIsNotConstructed = errors.New(
	"GetHealthQuery must be created via NewGetHealthQuery constructor",
)

type GetHealthQuery struct {
	guard guard.ConstructorGuard
}

func NewGetHealthQuery() GetHealthQuery {
	return GetHealthQuery{guard: guard.NewConstructorGuard()}
}

func (q GetHealthQuery) Validate() error {
	return q.guard.Validate(ErrGetHealthQueryIsNotConstructed)
}

// MigrationLedger reports which schema migrations ran and which are still
// pending, in declared order.
type MigrationLedger interface {
	MigrationState(ctx context.Context) (applied, pending []string, err error)
}

// MigrationStateView mirrors the ledger.
type MigrationStateView struct {
	Applied []string `json:"applied"`
	Pending []string `json:"pending"`
}

// HealthView describes the running service.
type HealthView struct {
	Status        string             `json:"status"`
	Environment   string             `json:"environment"`
	Driver        string             `json:"driver"`
	Database      string             `json:"database"`
	Migrations    MigrationStateView `json:"migrations"`
	ServerTime    time.Time          `json:"server_time"`
	UptimeSeconds int64              `json:"uptime_seconds"`
}

// GetHealthQueryHandler reports liveness, the database connection and the
// migration ledger.
type GetHealthQueryHandler struct {
	db          *gorm.DB
	ledger      MigrationLedger
	environment string
	startedAt   time.Time
	now         func() time.Time
}

func NewGetHealthQueryHandler(db *gorm.DB, ledger MigrationLedger, environment string, startedAt time.Time) GetHealthQueryHandler {
	return GetHealthQueryHandler{
		db:          db,
		ledger:      ledger,
		environment: environment,
		startedAt:   startedAt,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Handle never fails because the database is down: the view then reports
// status "degraded" and carries the error text in Database.
func (h GetHealthQueryHandler) Handle(ctx context.Context, query GetHealthQuery) (HealthView, error) {
	if err := query.Validate(); err != nil {
		return HealthView{}, err
	}

	now := h.now()
	view := HealthView{
		Status:        "ok",
		Environment:   h.environment,
		Driver:        h.db.Dialector.Name(),
		Database:      "ok",
		Migrations:    MigrationStateView{Applied: []string{}, Pending: []string{}},
		ServerTime:    now,
		UptimeSeconds: int64(now.Sub(h.startedAt).Round(time.Second) / time.Second),
	}

	if err := h.ping(ctx); err != nil {
		view.Status = "degraded"
		view.Database = err.Error()
		return view, nil
	}

	applied, pending, err := h.ledger.MigrationState(ctx)
	if err != nil {
		view.Status = "degraded"
		view.Database = err.Error()
		return view, nil
	}
	view.Migrations = MigrationStateView{Applied: applied, Pending: pending}
	if len(pending) > 0 {
		view.Status = "degraded"
	}
	return view, nil
}

func (h GetHealthQueryHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
