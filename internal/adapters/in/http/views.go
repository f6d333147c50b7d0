package http

import (
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/product"
)

// Command handlers return aggregates; responses reuse the read-side views so
// a written resource looks the same as a read one.

func customerView(c *customer.Customer) queries.CustomerView {
	s := c.Snapshot()
	return queries.CustomerView{
		ID:               s.ID,
		Name:             s.Name,
		MainContactType:  string(s.MainContactType),
		MainContactValue: s.MainContactValue,
		OtherContacts:    s.OtherContacts,
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func addressView(a *customer.Address) queries.AddressView {
	s := a.Snapshot()
	return queries.AddressView{
		ID:          s.ID,
		CustomerID:  s.CustomerID,
		Label:       s.Label,
		FullAddress: s.FullAddress,
		ExtraInfo:   s.ExtraInfo,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func productView(p *product.Product) queries.ProductView {
	s := p.Snapshot()
	return queries.ProductView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		Status:      string(s.Status),
		PromoPrice:  s.PromoPrice,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
