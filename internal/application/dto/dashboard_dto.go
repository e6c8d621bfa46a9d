package dto

import "github.com/shopspring/decimal"

// DashboardSummary resumen de las tiendas visibles para el usuario.
type DashboardSummary struct {
	Shops          int             `json:"shops"`
	Employees      int             `json:"employees"`
	Items          int             `json:"items"`
	InventoryValue decimal.Decimal `json:"inventory_value"` // Σ sale_price
	PerShop        []ShopSummary   `json:"per_shop"`
}

// ShopSummary métricas de una tienda.
type ShopSummary struct {
	ShopID         int64           `json:"shop_id"`
	Name           string          `json:"name"`
	Employees      int             `json:"employees"`
	Items          int             `json:"items"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}
