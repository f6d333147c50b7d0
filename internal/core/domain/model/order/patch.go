package order

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/oapi-codegen/nullable"
)

// Patch is a sparse update of an order. Each field is tri-state: unspecified
// leaves the stored value alone, null clears it, a value replaces it.
//
// Status, PaymentStatus and PaymentMethod cannot be cleared; a null there is
// treated like an unspecified field. Empty strings clear the text fields.
type Patch struct {
	Status             nullable.Nullable[Status]
	PaymentStatus      nullable.Nullable[PaymentStatus]
	PaymentMethod      nullable.Nullable[string]
	DeliveryDate       nullable.Nullable[string]
	DeliveryTimeSlot   nullable.Nullable[string]
	DeliveryOrderIndex nullable.Nullable[int]
	AdminNote          nullable.Nullable[string]
	CancelReasonCode   nullable.Nullable[CancelReasonCode]
	CancelReasonText   nullable.Nullable[string]
}

// Validate checks enumerations, ranges and dates, and rejects a patch that
// would not change anything.
func (p Patch) Validate() error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredErrorWithCause("patch", errors.New("no valid fields to update"))
	}

	var problems []error
	if status, ok := kernel.Value(p.Status); ok {
		problems = append(problems, status.Validate())
	}
	if paymentStatus, ok := kernel.Value(p.PaymentStatus); ok {
		problems = append(problems, paymentStatus.Validate())
	}
	if code, ok := kernel.Value(p.CancelReasonCode); ok {
		problems = append(problems, code.Validate())
	}
	if date, ok := kernel.Value(p.DeliveryDate); ok && date != "" {
		problems = append(problems, validateDate("delivery_date", date))
	}
	return errors.Join(problems...)
}

// IsEmpty reports whether applying p would leave the order unchanged apart
// from last_updated_at.
func (p Patch) IsEmpty() bool {
	_, hasStatus := kernel.Value(p.Status)
	_, hasPaymentStatus := kernel.Value(p.PaymentStatus)
	method, hasMethod := kernel.Value(p.PaymentMethod)

	return !hasStatus && !hasPaymentStatus && (!hasMethod || method == "") &&
		!p.DeliveryDate.IsSpecified() &&
		!p.DeliveryTimeSlot.IsSpecified() &&
		!p.DeliveryOrderIndex.IsSpecified() &&
		!p.AdminNote.IsSpecified() &&
		!p.CancelReasonCode.IsSpecified() &&
		!p.CancelReasonText.IsSpecified()
}

// RequestsCancel reports whether the patch moves the order to cancelled.
func (p Patch) RequestsCancel() bool {
	status, ok := kernel.Value(p.Status)
	return ok && status == Cancelled
}

func (p Patch) touchesCancellation() bool {
	return p.RequestsCancel() || p.CancelReasonCode.IsSpecified()
}
