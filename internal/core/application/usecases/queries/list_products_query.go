package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ProductView is a catalog entry.
type ProductView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	BasePrice   kernel.Money  `json:"base_price"`
	Status      string        `json:"status"`
	PromoPrice  *kernel.Money `json:"promo_price"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ListProductsQuery filters the catalog by status and name.
type ListProductsQuery struct {
	statuses []product.Status
	q        string

	guard guard.ConstructorGuard
}

// NewListProductsQuery accepts comma-separated status lists.
func NewListProductsQuery(statuses []string, q string) (ListProductsQuery, error) {
	query := ListProductsQuery{q: strings.TrimSpace(q), guard: guard.NewConstructorGuard()}

	var problems []error
	for _, raw := range splitList(statuses) {
		s := product.Status(raw)
		problems = append(problems, s.Validate())
		query.statuses = append(query.statuses, s)
	}
	if err := errors.Join(problems...); err != nil {
		return ListProductsQuery{}, err
	}
	return query, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ListProductsQueryHandler lists products, newest first.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	tx := db.Table("products").
		Select("id, name, description, base_price, status, promo_price, created_at, updated_at")
	if len(query.statuses) > 0 {
		tx = tx.Where("status IN ?", query.statuses)
	}
	if query.q != "" {
		clause, args := containsAny(db, query.q, "name")
		tx = tx.Where(clause, args...)
	}

	products := make([]ProductView, 0)
	if err := tx.Order("id DESC").Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
