package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"github.com/oapi-codegen/nullable"
)

// ErrProductIsNotConstructed is returned when a Product was not built by NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Status controls whether and at which price a product is sold.
type Status string

const (
	Active    Status = "active"
	Inactive  Status = "inactive"
	Promotion Status = "promotion"
)

// Statuses lists every valid product status.
func Statuses() []Status {
	return []Status{Active, Inactive, Promotion}
}

// Validate reports whether s is a known product status.
func (s Status) Validate() error {
	for _, known := range Statuses() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a product status", string(s)))
}

// Product is a catalog entry.
type Product struct {
	id          int64
	name        string
	description *string
	basePrice   kernel.Money
	status      Status
	promoPrice  *kernel.Money
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates a product. An empty status means active; a zero promo
// price is stored as no promo price.
func NewProduct(name string, description *string, basePrice kernel.Money, status Status, promoPrice *kernel.Money, now time.Time) (*Product, error) {
	p := &Product{
		description: kernel.EmptyToNil(description),
		status:      Active,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}
	if status != "" {
		p.status = status
	}

	if err := errors.Join(
		p.setName(name),
		p.setBasePrice(basePrice),
		p.status.Validate(),
		p.setPromoPrice(promoPrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Snapshot is the persisted state of a product.
type Snapshot struct {
	ID          int64
	Name        string
	Description *string
	BasePrice   kernel.Money
	Status      Status
	PromoPrice  *kernel.Money
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreProduct rebuilds a stored product.
func RestoreProduct(s Snapshot) *Product {
	return &Product{
		id:          s.ID,
		name:        s.Name,
		description: s.Description,
		basePrice:   s.BasePrice,
		status:      s.Status,
		promoPrice:  s.PromoPrice,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		guard:       guard.NewConstructorGuard(),
	}
}

// Snapshot exports the current state for persistence.
func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		ID:          p.id,
		Name:        p.name,
		Description: p.description,
		BasePrice:   p.basePrice,
		Status:      p.status,
		PromoPrice:  p.promoPrice,
		CreatedAt:   p.createdAt,
		UpdatedAt:   p.updatedAt,
	}
}

// Validate ensures the Product was created via a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() int64                 { return p.id }
func (p *Product) Name() string              { return p.name }
func (p *Product) Description() *string      { return p.description }
func (p *Product) BasePrice() kernel.Money   { return p.basePrice }
func (p *Product) Status() Status            { return p.status }
func (p *Product) PromoPrice() *kernel.Money { return p.promoPrice }
func (p *Product) CreatedAt() time.Time      { return p.createdAt }
func (p *Product) UpdatedAt() time.Time      { return p.updatedAt }

// EffectivePrice is the price a new order line pays when the caller does not
// supply one: the promo price while on promotion, otherwise the base price.
func (p *Product) EffectivePrice() kernel.Money {
	if p.status == Promotion && p.promoPrice != nil && !p.promoPrice.IsZero() {
		return *p.promoPrice
	}
	return p.basePrice
}

// Patch is a sparse product update. A null base price resets it to zero; a
// null or zero promo price removes it.
type Patch struct {
	Name        nullable.Nullable[string]
	Description nullable.Nullable[string]
	BasePrice   nullable.Nullable[kernel.Money]
	Status      nullable.Nullable[Status]
	PromoPrice  nullable.Nullable[kernel.Money]
}

// IsEmpty reports whether p specifies no field at all.
func (p Patch) IsEmpty() bool {
	return !p.Name.IsSpecified() && !p.Description.IsSpecified() && !p.BasePrice.IsSpecified() &&
		!p.Status.IsSpecified() && !p.PromoPrice.IsSpecified()
}

// Apply changes the product according to patch. On error nothing changes.
func (p *Product) Apply(patch Patch, now time.Time) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredErrorWithCause("patch", errors.New("no fields to update"))
	}

	next := *p
	var problems []error
	if patch.Name.IsSpecified() {
		name, _ := kernel.Value(patch.Name)
		problems = append(problems, next.setName(name))
	}
	if patch.Description.IsSpecified() {
		next.description = kernel.TextOrNil(patch.Description)
	}
	if patch.BasePrice.IsSpecified() {
		price, _ := kernel.Value(patch.BasePrice)
		problems = append(problems, next.setBasePrice(price))
	}
	if patch.Status.IsSpecified() {
		status, _ := kernel.Value(patch.Status)
		if err := status.Validate(); err != nil {
			problems = append(problems, err)
		} else {
			next.status = status
		}
	}
	if patch.PromoPrice.IsSpecified() {
		problems = append(problems, next.setPromoPrice(kernel.PointerOrNil(patch.PromoPrice)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	next.updatedAt = now
	*p = next
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setBasePrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("base_price", price.String(), "0.00", "unbounded")
	}
	p.basePrice = price
	return nil
}

func (p *Product) setPromoPrice(price *kernel.Money) error {
	if price == nil || price.IsZero() {
		p.promoPrice = nil
		return nil
	}
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("promo_price", price.String(), "0.00", "unbounded")
	}
	v := *price
	p.promoPrice = &v
	return nil
}
