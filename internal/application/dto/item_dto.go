package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/shop-crm/internal/domain/entity"
)

// CreateItemRequest entrada para agregar un ítem al inventario de una tienda.
type CreateItemRequest struct {
	Name          string          `json:"name" validate:"required,min=2"`
	Brand         string          `json:"brand" validate:"required"`
	Category      string          `json:"category" validate:"required"`
	Size          string          `json:"size" validate:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"positive"`
	SalePrice     decimal.Decimal `json:"sale_price" validate:"positive"`
	PhotoURL      string          `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// UpdateItemRequest actualización parcial de un ítem.
type UpdateItemRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=2"`
	Brand         *string          `json:"brand,omitempty" validate:"omitempty,min=1"`
	Category      *string          `json:"category,omitempty" validate:"omitempty,min=1"`
	Size          *string          `json:"size,omitempty" validate:"omitempty,min=1"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty" validate:"omitempty,positive"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty" validate:"omitempty,positive"`
	PhotoURL      *string          `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// ItemResponse ítem tal como lo devuelve el backend.
type ItemResponse struct {
	ID            int64           `json:"id"`
	ShopID        int64           `json:"shop_id,omitempty"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Size          string          `json:"size"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PhotoURL      string          `json:"photo_url"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToEntity convierte al modelo del cliente. Sin foto se usa el placeholder.
func (r ItemResponse) ToEntity(shopID int64) entity.Item {
	photo := r.PhotoURL
	if photo == "" {
		photo = entity.PlaceholderPhotoURL
	}
	return entity.Item{
		ID:            r.ID,
		ShopID:        shopID,
		Name:          r.Name,
		Brand:         r.Brand,
		Category:      r.Category,
		Size:          r.Size,
		PurchasePrice: r.PurchasePrice,
		SalePrice:     r.SalePrice,
		PhotoURL:      photo,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromItem cuerpo snake_case de un ítem del cliente.
func FromItem(it entity.Item) ItemResponse {
	return ItemResponse{
		ID:            it.ID,
		ShopID:        it.ShopID,
		Name:          it.Name,
		Brand:         it.Brand,
		Category:      it.Category,
		Size:          it.Size,
		PurchasePrice: it.PurchasePrice,
		SalePrice:     it.SalePrice,
		PhotoURL:      it.PhotoURL,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
