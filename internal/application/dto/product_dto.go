package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

// CreateProductRequest input to register a product in the catalog.
type CreateProductRequest struct {
	SKU         string             `json:"sku" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Weight      float64            `json:"weight" validate:"min=0"`
	Dimensions  *entity.Dimensions `json:"dimensions"`
	UnitPrice   decimal.Decimal    `json:"unit_price"`
	ImageURL    string             `json:"image_url"`
}

// ProductResponse output shape of a product.
type ProductResponse struct {
	ID          string             `json:"id"`
	SKU         string             `json:"sku"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category,omitempty"`
	Weight      float64            `json:"weight,omitempty"`
	Dimensions  *entity.Dimensions `json:"dimensions,omitempty"`
	UnitPrice   decimal.Decimal    `json:"unit_price"`
	ImageURL    string             `json:"image_url,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ProductListResponse paginated list of products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageRequest       `json:"page"`
}
