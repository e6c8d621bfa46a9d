package ports

import (
	"time"

	"github.com/jhoicas/shop-crm/internal/domain/entity"
)

// InventoryReportRenderer genera el reporte de inventario de una tienda.
type InventoryReportRenderer interface {
	RenderInventory(shop entity.Shop, items []entity.Item, generatedAt time.Time) ([]byte, error)
}
