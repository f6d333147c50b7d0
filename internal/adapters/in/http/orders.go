package http

import (
	"context"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/nullable"
)

type orderItemRequest struct {
	ProductID int64         `json:"product_id"`
	Quantity  *int          `json:"quantity"`
	UnitPrice *kernel.Money `json:"unit_price"`
	Discount  *kernel.Money `json:"discount"`
}

type createOrderRequest struct {
	CustomerID         int64                   `json:"customer_id"`
	AddressID          int64                   `json:"address_id"`
	DeliveryDate       *string                 `json:"delivery_date"`
	DeliveryTimeSlot   *string                 `json:"delivery_time_slot"`
	PaymentMethod      string                  `json:"payment_method"`
	PaymentStatus      order.PaymentStatus     `json:"payment_status"`
	OrderStatus        order.Status            `json:"order_status"`
	AdminNote          *string                 `json:"admin_note"`
	DeliveryOrderIndex *int                    `json:"delivery_order_index"`
	CancelReasonCode   *order.CancelReasonCode `json:"cancel_reason_code"`
	CancelReasonText   *string                 `json:"cancel_reason_text"`
	Items              []orderItemRequest      `json:"items"`
}

func (r createOrderRequest) details() order.Details {
	return order.Details{
		DeliveryDate:       r.DeliveryDate,
		DeliveryTimeSlot:   r.DeliveryTimeSlot,
		PaymentMethod:      r.PaymentMethod,
		PaymentStatus:      r.PaymentStatus,
		Status:             r.OrderStatus,
		AdminNote:          r.AdminNote,
		DeliveryOrderIndex: r.DeliveryOrderIndex,
		CancelReasonCode:   r.CancelReasonCode,
		CancelReasonText:   r.CancelReasonText,
	}
}

func (r createOrderRequest) lines() []commands.OrderLineInput {
	lines := make([]commands.OrderLineInput, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, commands.OrderLineInput(item))
	}
	return lines
}

// updateOrderRequest mirrors order.Patch field for field.
type updateOrderRequest struct {
	Status             nullable.Nullable[order.Status]           `json:"order_status"`
	PaymentStatus      nullable.Nullable[order.PaymentStatus]    `json:"payment_status"`
	PaymentMethod      nullable.Nullable[string]                 `json:"payment_method"`
	DeliveryDate       nullable.Nullable[string]                 `json:"delivery_date"`
	DeliveryTimeSlot   nullable.Nullable[string]                 `json:"delivery_time_slot"`
	DeliveryOrderIndex nullable.Nullable[int]                    `json:"delivery_order_index"`
	AdminNote          nullable.Nullable[string]                 `json:"admin_note"`
	CancelReasonCode   nullable.Nullable[order.CancelReasonCode] `json:"cancel_reason_code"`
	CancelReasonText   nullable.Nullable[string]                 `json:"cancel_reason_text"`
}

type moveDeliveryRequest struct {
	OrderIDs  []int64 `json:"order_ids"`
	OrderID   int64   `json:"order_id"`
	Direction string  `json:"direction"`
}

type moveDeliveryResponse struct {
	OrderIDs []int64 `json:"order_ids"`
	Moved    bool    `json:"moved"`
}

// ListOrders handles GET /api/orders. order_status and payment_status may
// repeat or hold comma-separated values.
func (s *Server) ListOrders(c echo.Context) error {
	params := c.QueryParams()
	query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{
		Q:               c.QueryParam("q"),
		OrderStatuses:   params["order_status"],
		PaymentStatuses: params["payment_status"],
		PaymentMethod:   c.QueryParam("payment_method"),
		CreatedFrom:     c.QueryParam("created_from"),
		CreatedTo:       c.QueryParam("created_to"),
		DeliveryFrom:    c.QueryParam("delivery_from"),
		DeliveryTo:      c.QueryParam("delivery_to"),
		IncludeAddress:  queryBool(c, "include_address"),
		Sort:            c.QueryParam("sort"),
		Limit:           queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"orders": orders})
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "order_id")
	if err != nil {
		return err
	}
	detail, err := s.orderDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateOrder handles POST /api/orders and answers with the stored order.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, req.AddressID, req.details(), req.lines())
	if err != nil {
		return err
	}
	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	detail, err := s.orderDetail(c.Request().Context(), created.ID())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

// UpdateOrder handles PATCH /api/orders/:id.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathID(c, "order_id")
	if err != nil {
		return err
	}
	var req updateOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateOrderCommand(id, order.Patch(req))
	if err != nil {
		return err
	}
	if _, err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	detail, err := s.orderDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// LookupOrderStatus handles GET /api/order-status?order_code=&phone=.
func (s *Server) LookupOrderStatus(c echo.Context) error {
	query, err := queries.NewLookupOrderStatusQuery(c.QueryParam("order_code"), c.QueryParam("phone"))
	if err != nil {
		return err
	}
	view, err := s.h.LookupStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// MoveDeliveryOrder handles POST /api/delivery-queue/move.
func (s *Server) MoveDeliveryOrder(c echo.Context) error {
	var req moveDeliveryRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewMoveDeliveryOrderCommand(req.OrderIDs, req.OrderID, req.Direction)
	if err != nil {
		return err
	}
	result, err := s.h.MoveDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moveDeliveryResponse(result))
}

func (s *Server) orderDetail(ctx context.Context, id int64) (queries.OrderDetail, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderDetail{}, err
	}
	return s.h.GetOrder.Handle(ctx, query)
}
