package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// DateLayout is the calendar-day format used for delivery dates.
const DateLayout = "2006-01-02"

// Details carries the optional header fields of a new order. Zero values select
// the defaults: transfer, unpaid, pending.
type Details struct {
	DeliveryDate       *string
	DeliveryTimeSlot   *string
	PaymentMethod      string
	PaymentStatus      PaymentStatus
	Status             Status
	AdminNote          *string
	DeliveryOrderIndex *int
	CancelReasonCode   *CancelReasonCode
	CancelReasonText   *string
}

// Order is the aggregate root for a customer order.
//
// Invariants:
//   - code, customerID and addressID never change after creation
//   - status cancelled implies a non-nil cancelReasonCode
//   - items are fixed at creation
type Order struct {
	id                 int64
	code               Code
	customerID         int64
	addressID          int64
	createdAt          time.Time
	deliveryDate       *string
	deliveryTimeSlot   *string
	paymentMethod      string
	paymentStatus      PaymentStatus
	status             Status
	cancelReasonCode   *CancelReasonCode
	cancelReasonText   *string
	deliveryOrderIndex *int
	adminNote          *string
	lastUpdatedAt      time.Time
	items              []*Item

	guard guard.ConstructorGuard
}

// NewOrder creates an order that has not been stored yet. created_at and
// last_updated_at both take the value of now.
//
// Example:
//
//	code, _ := order.NewCode(1)
//	o, err := order.NewOrder(code, customerID, addressID, order.Details{}, time.Now())
func NewOrder(code Code, customerID, addressID int64, details Details, now time.Time) (*Order, error) {
	o := &Order{
		code:             code,
		createdAt:        now,
		lastUpdatedAt:    now,
		deliveryTimeSlot: kernel.EmptyToNil(details.DeliveryTimeSlot),
		adminNote:        kernel.EmptyToNil(details.AdminNote),
		cancelReasonText: kernel.EmptyToNil(details.CancelReasonText),
		paymentMethod:    DefaultPaymentMethod,
		paymentStatus:    Unpaid,
		status:           Pending,
		guard:            guard.NewConstructorGuard(),
	}
	if details.PaymentMethod != "" {
		o.paymentMethod = details.PaymentMethod
	}
	if details.PaymentStatus != "" {
		o.paymentStatus = details.PaymentStatus
	}
	if details.Status != "" {
		o.status = details.Status
	}
	if details.DeliveryOrderIndex != nil {
		idx := *details.DeliveryOrderIndex
		o.deliveryOrderIndex = &idx
	}

	if err := errors.Join(
		o.setCode(code),
		o.setCustomerID(customerID),
		o.setAddressID(addressID),
		o.setDeliveryDate(details.DeliveryDate),
		o.paymentStatus.Validate(),
		o.status.Validate(),
		o.setCancelReasonCode(details.CancelReasonCode),
	); err != nil {
		return nil, err
	}
	if err := o.checkCancelReason(); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the full persisted state of an order. Repositories use it to
// rebuild aggregates with RestoreOrder.
type Snapshot struct {
	ID                 int64
	Code               Code
	CustomerID         int64
	AddressID          int64
	CreatedAt          time.Time
	DeliveryDate       *string
	DeliveryTimeSlot   *string
	PaymentMethod      string
	PaymentStatus      PaymentStatus
	Status             Status
	CancelReasonCode   *CancelReasonCode
	CancelReasonText   *string
	DeliveryOrderIndex *int
	AdminNote          *string
	LastUpdatedAt      time.Time
	Items              []*Item
}

// RestoreOrder rebuilds an order from storage. Stored values are trusted; no
// business validation runs.
func RestoreOrder(s Snapshot) *Order {
	return &Order{
		id:                 s.ID,
		code:               s.Code,
		customerID:         s.CustomerID,
		addressID:          s.AddressID,
		createdAt:          s.CreatedAt,
		deliveryDate:       s.DeliveryDate,
		deliveryTimeSlot:   s.DeliveryTimeSlot,
		paymentMethod:      s.PaymentMethod,
		paymentStatus:      s.PaymentStatus,
		status:             s.Status,
		cancelReasonCode:   s.CancelReasonCode,
		cancelReasonText:   s.CancelReasonText,
		deliveryOrderIndex: s.DeliveryOrderIndex,
		adminNote:          s.AdminNote,
		lastUpdatedAt:      s.LastUpdatedAt,
		items:              s.Items,
		guard:              guard.NewConstructorGuard(),
	}
}

// Snapshot exports the current state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                 o.id,
		Code:               o.code,
		CustomerID:         o.customerID,
		AddressID:          o.addressID,
		CreatedAt:          o.createdAt,
		DeliveryDate:       o.deliveryDate,
		DeliveryTimeSlot:   o.deliveryTimeSlot,
		PaymentMethod:      o.paymentMethod,
		PaymentStatus:      o.paymentStatus,
		Status:             o.status,
		CancelReasonCode:   o.cancelReasonCode,
		CancelReasonText:   o.cancelReasonText,
		DeliveryOrderIndex: o.deliveryOrderIndex,
		AdminNote:          o.adminNote,
		LastUpdatedAt:      o.lastUpdatedAt,
		Items:              o.items,
	}
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() int64                           { return o.id }
func (o *Order) Code() Code                          { return o.code }
func (o *Order) CustomerID() int64                   { return o.customerID }
func (o *Order) AddressID() int64                    { return o.addressID }
func (o *Order) CreatedAt() time.Time                { return o.createdAt }
func (o *Order) DeliveryDate() *string               { return o.deliveryDate }
func (o *Order) DeliveryTimeSlot() *string           { return o.deliveryTimeSlot }
func (o *Order) PaymentMethod() string               { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus        { return o.paymentStatus }
func (o *Order) Status() Status                      { return o.status }
func (o *Order) CancelReasonCode() *CancelReasonCode { return o.cancelReasonCode }
func (o *Order) CancelReasonText() *string           { return o.cancelReasonText }
func (o *Order) DeliveryOrderIndex() *int            { return o.deliveryOrderIndex }
func (o *Order) AdminNote() *string                  { return o.adminNote }
func (o *Order) LastUpdatedAt() time.Time            { return o.lastUpdatedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a line before the order is first stored.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("order %s is already stored", o.code))
	}
	o.items = append(o.items, item)
	return nil
}

// Apply changes the order according to a sparse patch and stamps
// last_updated_at with now. On error the order is left untouched.
//
// Rules, in order:
//   - unknown statuses, out-of-range cancel codes and malformed dates are rejected
//   - a patch that changes nothing is rejected
//   - setting a status other than cancelled without mentioning
//     cancel_reason_code clears both cancel fields
//   - explicitly supplied cancel fields are applied after that clearing
//   - when the patch touches the cancel state, a cancelled result without a
//     code fails with errs.ErrMissingCancelReason
func (o *Order) Apply(p Patch, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	next := *o
	if status, ok := kernel.Value(p.Status); ok {
		next.status = status
		if status != Cancelled && !p.CancelReasonCode.IsSpecified() {
			next.cancelReasonCode = nil
			next.cancelReasonText = nil
		}
	}
	if paymentStatus, ok := kernel.Value(p.PaymentStatus); ok {
		next.paymentStatus = paymentStatus
	}
	if method, ok := kernel.Value(p.PaymentMethod); ok && method != "" {
		next.paymentMethod = method
	}
	if p.DeliveryDate.IsSpecified() {
		next.deliveryDate = kernel.TextOrNil(p.DeliveryDate)
	}
	if p.DeliveryTimeSlot.IsSpecified() {
		next.deliveryTimeSlot = kernel.TextOrNil(p.DeliveryTimeSlot)
	}
	if p.DeliveryOrderIndex.IsSpecified() {
		next.deliveryOrderIndex = kernel.PointerOrNil(p.DeliveryOrderIndex)
	}
	if p.AdminNote.IsSpecified() {
		next.adminNote = kernel.TextOrNil(p.AdminNote)
	}
	if p.CancelReasonCode.IsSpecified() {
		next.cancelReasonCode = kernel.PointerOrNil(p.CancelReasonCode)
	}
	if p.CancelReasonText.IsSpecified() {
		next.cancelReasonText = kernel.TextOrNil(p.CancelReasonText)
	}

	if p.touchesCancellation() {
		if err := next.checkCancelReason(); err != nil {
			return err
		}
	}

	next.lastUpdatedAt = now
	*o = next
	return nil
}

func (o *Order) checkCancelReason() error {
	if o.status == Cancelled && o.cancelReasonCode == nil {
		return errs.ErrMissingCancelReason
	}
	return nil
}

func (o *Order) setCode(code Code) error {
	if !strings.HasPrefix(string(code), "N-") {
		return errs.NewValueIsInvalidErrorWithCause("order_code", fmt.Errorf("%q is not an order code", string(code)))
	}
	o.code = code
	return nil
}

func (o *Order) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("customer_id")
	}
	o.customerID = id
	return nil
}

func (o *Order) setAddressID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("address_id")
	}
	o.addressID = id
	return nil
}

func (o *Order) setDeliveryDate(date *string) error {
	date = kernel.EmptyToNil(date)
	if date != nil {
		if err := validateDate("delivery_date", *date); err != nil {
			return err
		}
	}
	o.deliveryDate = date
	return nil
}

func (o *Order) setCancelReasonCode(code *CancelReasonCode) error {
	if code == nil {
		o.cancelReasonCode = nil
		return nil
	}
	if err := code.Validate(); err != nil {
		return err
	}
	c := *code
	o.cancelReasonCode = &c
	return nil
}

func validateDate(param, value string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return nil
}
