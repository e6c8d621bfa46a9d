package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderPhotoURL se usa cuando el backend no devuelve foto para un ítem.
const PlaceholderPhotoURL = "https://placehold.co/300x300"

// Item representa un artículo del inventario de una tienda.
// CreatedAt/UpdatedAt los fija el backend al crear y actualizar.
type Item struct {
	ID            int64
	ShopID        int64
	Name          string
	Brand         string
	Category      string
	Size          string
	PurchasePrice decimal.Decimal // precio de compra, siempre > 0
	SalePrice     decimal.Decimal // precio de venta, siempre > 0
	PhotoURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Margin devuelve SalePrice - PurchasePrice.
func (i Item) Margin() decimal.Decimal {
	return i.SalePrice.Sub(i.PurchasePrice)
}
