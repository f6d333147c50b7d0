package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// Order list sort keys.
const (
	SortCreated  = "created"
	SortDelivery = "delivery"
)

// ListOrdersFilter is the raw filter as received from a client. Status lists
// may hold comma-separated values.
type ListOrdersFilter struct {
	Q               string
	OrderStatuses   []string
	PaymentStatuses []string
	PaymentMethod   string
	CreatedFrom     string
	CreatedTo       string
	DeliveryFrom    string
	DeliveryTo      string
	IncludeAddress  bool
	Sort            string
	Limit           int
}

// ListOrdersQuery lists order summaries for the back office.
type ListOrdersQuery struct {
	q               string
	orderStatuses   []order.Status
	paymentStatuses []order.PaymentStatus
	paymentMethod   string
	createdFrom     *time.Time
	createdTo       *time.Time
	deliveryFrom    *string
	deliveryTo      *string
	includeAddress  bool
	sort            string
	limit           int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates statuses, dates and the sort key. A missing
// limit means DefaultLimit; anything above MaxLimit is capped.
func NewListOrdersQuery(f ListOrdersFilter) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		q:              strings.TrimSpace(f.Q),
		paymentMethod:  strings.TrimSpace(f.PaymentMethod),
		includeAddress: f.IncludeAddress,
		sort:           SortCreated,
		limit:          normalizeLimit(f.Limit),
		guard:          guard.NewConstructorGuard(),
	}

	var problems []error
	for _, raw := range splitList(f.OrderStatuses) {
		s, err := order.ParseStatus(raw)
		problems = append(problems, err)
		q.orderStatuses = append(q.orderStatuses, s)
	}
	for _, raw := range splitList(f.PaymentStatuses) {
		s, err := order.ParsePaymentStatus(raw)
		problems = append(problems, err)
		q.paymentStatuses = append(q.paymentStatuses, s)
	}

	var err error
	q.createdFrom, err = timeBound("created_from", f.CreatedFrom, false)
	problems = append(problems, err)
	q.createdTo, err = timeBound("created_to", f.CreatedTo, true)
	problems = append(problems, err)
	q.deliveryFrom, err = dateBound("delivery_from", f.DeliveryFrom)
	problems = append(problems, err)
	q.deliveryTo, err = dateBound("delivery_to", f.DeliveryTo)
	problems = append(problems, err)

	switch sort := strings.TrimSpace(f.Sort); sort {
	case "", SortCreated:
	case SortDelivery:
		q.sort = SortDelivery
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("sort",
			fmt.Errorf("%q is neither %s nor %s", sort, SortCreated, SortDelivery)))
	}

	if err := errors.Join(problems...); err != nil {
		return ListOrdersQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Limit() int   { return q.limit }
func (q ListOrdersQuery) Sort() string { return q.sort }

func timeBound(param, raw string, upper bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := parseBound(raw, upper)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return &t, nil
}

func dateBound(param, raw string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if _, err := time.Parse(order.DateLayout, raw); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return &raw, nil
}

// OrderSummary is one row of the order list. Address fields are only filled
// when the query asked for them.
type OrderSummary struct {
	ID                 int64     `json:"id"`
	OrderCode          string    `json:"order_code"`
	CustomerID         int64     `json:"customer_id"`
	CustomerName       string    `json:"customer_name"`
	MainContactType    string    `json:"main_contact_type"`
	MainContactValue   string    `json:"main_contact_value"`
	CreatedAt          time.Time `json:"created_at"`
	DeliveryDate       *string   `json:"delivery_date"`
	DeliveryTimeSlot   *string   `json:"delivery_time_slot"`
	DeliveryOrderIndex *int      `json:"delivery_order_index"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentStatus      string    `json:"payment_status"`
	OrderStatus        string    `json:"order_status"`

	FullAddress *string  `json:"full_address,omitempty"`
	ExtraInfo   *string  `json:"extra_info,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}
