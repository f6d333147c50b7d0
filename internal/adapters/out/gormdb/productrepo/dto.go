// Package productrepo maps catalog products to the products table.
package productrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
)

// ProductDTO is the database shape of a product.
type ProductDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	Description *string
	BasePrice   kernel.Money  `gorm:"type:numeric(12,2);not null"`
	Status      string        `gorm:"size:16;not null"`
	PromoPrice  *kernel.Money `gorm:"type:numeric(12,2)"`
	CreatedAt   time.Time     `gorm:"not null"`
	UpdatedAt   time.Time     `gorm:"not null"`
}

// TableName overrides GORM's pluralization.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	s := p.Snapshot()
	return ProductDTO{
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

func toDomain(dto ProductDTO) *product.Product {
	return product.RestoreProduct(product.Snapshot{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		BasePrice:   dto.BasePrice,
		Status:      product.Status(dto.Status),
		PromoPrice:  dto.PromoPrice,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
