package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/customer"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/nullable"
)

type createCustomerRequest struct {
	Name             string  `json:"name"`
	MainContactType  string  `json:"main_contact_type"`
	MainContactValue string  `json:"main_contact_value"`
	OtherContacts    *string `json:"other_contacts"`
	Notes            *string `json:"notes"`
}

// updateCustomerRequest mirrors customer.Patch field for field.
type updateCustomerRequest struct {
	Name             nullable.Nullable[string]               `json:"name"`
	MainContactType  nullable.Nullable[customer.ContactType] `json:"main_contact_type"`
	MainContactValue nullable.Nullable[string]               `json:"main_contact_value"`
	OtherContacts    nullable.Nullable[string]               `json:"other_contacts"`
	Notes            nullable.Nullable[string]               `json:"notes"`
}

type addAddressRequest struct {
	Label       *string  `json:"label"`
	FullAddress string   `json:"full_address"`
	ExtraInfo   *string  `json:"extra_info"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// updateAddressRequest mirrors customer.AddressPatch field for field.
type updateAddressRequest struct {
	Label       nullable.Nullable[string]  `json:"label"`
	FullAddress nullable.Nullable[string]  `json:"full_address"`
	ExtraInfo   nullable.Nullable[string]  `json:"extra_info"`
	Latitude    nullable.Nullable[float64] `json:"latitude"`
	Longitude   nullable.Nullable[float64] `json:"longitude"`
}

// ListCustomers handles GET /api/customers?q=&limit=.
func (s *Server) ListCustomers(c echo.Context) error {
	query := queries.NewListCustomersQuery(c.QueryParam("q"), queryInt(c, "limit"))
	customers, err := s.h.Customers.List(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"customers": customers})
}

// GetCustomer handles GET /api/customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathID(c, "customer_id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return err
	}
	detail, err := s.h.Customers.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateCustomer handles POST /api/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateCustomerCommand(req.Name, customer.ContactType(req.MainContactType),
		req.MainContactValue, req.OtherContacts, req.Notes)
	if err != nil {
		return err
	}
	created, err := s.h.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"customer": customerView(created)})
}

// UpdateCustomer handles PATCH /api/customers/:id.
func (s *Server) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c, "customer_id")
	if err != nil {
		return err
	}
	var req updateCustomerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateCustomerCommand(id, customer.Patch(req))
	if err != nil {
		return err
	}
	updated, err := s.h.UpdateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"customer": customerView(updated)})
}

// ListAddresses handles GET /api/customers/:id/addresses.
func (s *Server) ListAddresses(c echo.Context) error {
	id, err := pathID(c, "customer_id")
	if err != nil {
		return err
	}
	query, err := queries.NewListAddressesQuery(id)
	if err != nil {
		return err
	}
	addresses, err := s.h.Customers.ListAddresses(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"customer_id": id, "addresses": addresses})
}

// AddAddress handles POST /api/customers/:id/addresses.
func (s *Server) AddAddress(c echo.Context) error {
	id, err := pathID(c, "customer_id")
	if err != nil {
		return err
	}
	var req addAddressRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAddAddressCommand(id, req.FullAddress, customer.AddressDetails{
		Label:     req.Label,
		ExtraInfo: req.ExtraInfo,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return err
	}
	created, err := s.h.AddAddress.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"address": addressView(created)})
}

// UpdateAddress handles PATCH /api/addresses/:id.
func (s *Server) UpdateAddress(c echo.Context) error {
	id, err := pathID(c, "address_id")
	if err != nil {
		return err
	}
	var req updateAddressRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateAddressCommand(id, customer.AddressPatch(req))
	if err != nil {
		return err
	}
	updated, err := s.h.UpdateAddress.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"address": addressView(updated)})
}

// DeleteAddress handles DELETE /api/addresses/:id. Addresses referenced by
// an order are kept.
func (s *Server) DeleteAddress(c echo.Context) error {
	id, err := pathID(c, "address_id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteAddressCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.DeleteAddress.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true})
}
