package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description *string
	basePrice   kernel.Money
	status      product.Status
	promoPrice  *kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateProductCommand requires a name. An empty status means active.
func NewCreateProductCommand(name string, description *string, basePrice kernel.Money, status product.Status, promoPrice *kernel.Money) (CreateProductCommand, error) {
	var problems []error
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if status != "" {
		problems = append(problems, status.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		name:        name,
		description: description,
		basePrice:   basePrice,
		status:      status,
		promoPrice:  promoPrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string              { return c.name }
func (c CreateProductCommand) Description() *string      { return c.description }
func (c CreateProductCommand) BasePrice() kernel.Money   { return c.basePrice }
func (c CreateProductCommand) Status() product.Status    { return c.status }
func (c CreateProductCommand) PromoPrice() *kernel.Money { return c.promoPrice }
