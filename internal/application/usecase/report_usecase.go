package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/shop-crm/internal/application/ports"
)

// ReportUseCase reportes descargables.
type ReportUseCase struct {
	shops    *ShopUseCase
	items    *ItemUseCase
	renderer ports.InventoryReportRenderer
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(shops *ShopUseCase, items *ItemUseCase, renderer ports.InventoryReportRenderer) *ReportUseCase {
	return &ReportUseCase{shops: shops, items: items, renderer: renderer, now: time.Now}
}

// InventoryPDF PDF con el inventario de shopID.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context, shopID int64) ([]byte, error) {
	shop, err := uc.shops.GetByID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("reporte: tienda %d: %w", shopID, err)
	}
	items, err := uc.items.ListByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("reporte: ítems de tienda %d: %w", shopID, err)
	}
	doc, err := uc.renderer.RenderInventory(*shop, items, uc.now())
	if err != nil {
		return nil, fmt.Errorf("reporte: %w", err)
	}
	return doc, nil
}
