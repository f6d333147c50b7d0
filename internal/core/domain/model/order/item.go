package order

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned by Item.Validate for zero-value items.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line. Prices are copied from the catalog when the order is
// placed and never change afterwards, even if the product price does.
type Item struct {
	id        int64
	orderID   int64
	productID int64
	quantity  int
	unitPrice kernel.Money
	discount  kernel.Money
	lineTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a line item and computes its line total.
//
// Quantity is taken as given: zero or negative values are not rejected here.
// Callers supply the default of 1 when the quantity is absent.
func NewItem(productID int64, quantity int, unitPrice, discount kernel.Money) (*Item, error) {
	item := &Item{
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	item.lineTotal = unitPrice.Sub(discount).Times(quantity)
	return item, nil
}

// RestoreItem rebuilds a persisted item without recomputing its totals.
func RestoreItem(id, orderID, productID int64, quantity int, unitPrice, discount, lineTotal kernel.Money) *Item {
	return &Item{
		id:        id,
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		discount:  discount,
		lineTotal: lineTotal,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the item was built by NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() int64               { return i.id }
func (i *Item) OrderID() int64          { return i.orderID }
func (i *Item) ProductID() int64        { return i.productID }
func (i *Item) Quantity() int           { return i.quantity }
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i *Item) Discount() kernel.Money  { return i.discount }
func (i *Item) LineTotal() kernel.Money { return i.lineTotal }

func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsOutOfRangeError("product_id", productID, 1, "unbounded")
	}
	i.productID = productID
	return nil
}

func (i *Item) setDiscount(discount kernel.Money) error {
	if discount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("discount", discount.String(), "0.00", "unbounded")
	}
	i.discount = discount
	return nil
}
