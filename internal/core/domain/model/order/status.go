package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status is the fulfilment state of an order.
//
// The workflow normally runs pending -> confirmed -> preparing ->
// out_for_delivery -> delivered, with cancelled reachable at any time, but the
// aggregate accepts any status after any other so staff can correct mistakes.
type Status string

const (
	Pending        Status = "pending"
	Confirmed      Status = "confirmed"
	Preparing      Status = "preparing"
	OutForDelivery Status = "out_for_delivery"
	Delivered      Status = "delivered"
	Cancelled      Status = "cancelled"
)

// Statuses lists every valid order status in workflow order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Preparing, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus converts raw input into a validated Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate reports whether s is one of the known statuses.
func (s Status) Validate() error {
	for _, known := range Statuses() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("order_status", fmt.Errorf("%q is not an order status", string(s)))
}

func (s Status) String() string {
	return string(s)
}

// PaymentStatus is the settlement state of an order.
type PaymentStatus string

const (
	Unpaid   PaymentStatus = "unpaid"
	Paid     PaymentStatus = "paid"
	COD      PaymentStatus = "cod"
	Refunded PaymentStatus = "refunded"
)

// PaymentStatuses lists every valid payment status.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{Unpaid, Paid, COD, Refunded}
}

// ParsePaymentStatus converts raw input into a validated PaymentStatus.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	s := PaymentStatus(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate reports whether s is one of the known payment statuses.
func (s PaymentStatus) Validate() error {
	for _, known := range PaymentStatuses() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("payment_status", fmt.Errorf("%q is not a payment status", string(s)))
}

func (s PaymentStatus) String() string {
	return string(s)
}

// DefaultPaymentMethod is used when an order is created without a payment method.
const DefaultPaymentMethod = "transfer"

const (
	MinCancelReasonCode CancelReasonCode = 1
	MaxCancelReasonCode CancelReasonCode = 5
)

// CancelReasonCode identifies why an order was cancelled. The meaning of each
// code is owned by the back office; the core only enforces the range.
type CancelReasonCode int

// NewCancelReasonCode validates the range [1, 5].
func NewCancelReasonCode(v int) (CancelReasonCode, error) {
	c := CancelReasonCode(v)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

// Validate reports whether c lies within [MinCancelReasonCode, MaxCancelReasonCode].
func (c CancelReasonCode) Validate() error {
	if c < MinCancelReasonCode || c > MaxCancelReasonCode {
		return errs.NewValueIsOutOfRangeError("cancel_reason_code", int(c), int(MinCancelReasonCode), int(MaxCancelReasonCode))
	}
	return nil
}
