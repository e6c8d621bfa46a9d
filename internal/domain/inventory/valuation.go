package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/shop-crm/internal/domain/entity"
)

// Valuation totales monetarios de un conjunto de ítems (servicio de dominio).
type Valuation struct {
	Cost   decimal.Decimal // Σ precio de compra
	Value  decimal.Decimal // Σ precio de venta
	Margin decimal.Decimal // Value - Cost
}

// Value valor del inventario = Σ SalePrice. Sin ítems devuelve cero.
func Value(items []entity.Item) decimal.Decimal {
	return Valuate(items).Value
}

// Valuate calcula costo, valor y margen bruto de items.
func Valuate(items []entity.Item) Valuation {
	cost, value := decimal.Zero, decimal.Zero
	for _, it := range items {
		cost = cost.Add(it.PurchasePrice)
		value = value.Add(it.SalePrice)
	}
	return Valuation{Cost: cost, Value: value, Margin: value.Sub(cost)}
}
