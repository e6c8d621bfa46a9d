package dto

import "github.com/jhoicas/shop-crm/internal/domain/entity"

// CreateShopRequest entrada para crear una tienda (admin).
type CreateShopRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"required,min=5"`
	OwnerID     int64  `json:"owner_id,omitempty" validate:"omitempty,min=1"`
}

// UpdateShopRequest actualización parcial de una tienda.
type UpdateShopRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=5"`
	OwnerID     *int64  `json:"owner_id,omitempty" validate:"omitempty,min=1"`
}

// ShopResponse tienda tal como la devuelve el backend.
type ShopResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

// ToEntity convierte owner_id → OwnerID.
func (r ShopResponse) ToEntity() entity.Shop {
	return entity.Shop{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     r.OwnerID,
	}
}

// FromShop cuerpo snake_case de una tienda del cliente.
func FromShop(s entity.Shop) ShopResponse {
	return ShopResponse{ID: s.ID, Name: s.Name, Description: s.Description, OwnerID: s.OwnerID}
}
