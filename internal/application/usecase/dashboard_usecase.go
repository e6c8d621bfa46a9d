package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	"github.com/jhoicas/shop-crm/internal/domain/inventory"
	"github.com/jhoicas/shop-crm/internal/domain/permission"
)

// dashboardFanOut consultas por tienda en vuelo a la vez.
const dashboardFanOut = 4

// DashboardUseCase resumen de las tiendas visibles para un usuario.
type DashboardUseCase struct {
	shops     *ShopUseCase
	employees *EmployeeUseCase
	items     *ItemUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(shops *ShopUseCase, employees *EmployeeUseCase, items *ItemUseCase) *DashboardUseCase {
	return &DashboardUseCase{shops: shops, employees: employees, items: items}
}

// Summary tiendas visibles (admin: todas, owner: las propias, user: ninguna),
// conteo de empleados e ítems y valor del inventario (Σ precio de venta).
//
// Empleados e ítems de cada tienda se consultan en paralelo; el primer error
// cancela el resto.
func (uc *DashboardUseCase) Summary(ctx context.Context, user *entity.User) (*dto.DashboardSummary, error) {
	summary := &dto.DashboardSummary{InventoryValue: decimal.Zero, PerShop: []dto.ShopSummary{}}
	if user == nil {
		return summary, nil
	}

	var (
		shops []entity.Shop
		err   error
	)
	switch user.Role {
	case entity.RoleAdmin:
		shops, err = uc.shops.ListAll(ctx)
	case entity.RoleOwner:
		shops, err = uc.shops.ListByOwner(ctx)
	default:
		return summary, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar tiendas: %w", err)
	}

	countEmployees := permission.Has(user, permission.ViewEmployees)
	countItems := permission.Has(user, permission.ViewInventory)

	per := make([]dto.ShopSummary, len(shops))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dashboardFanOut)
	for i, shop := range shops {
		per[i] = dto.ShopSummary{ShopID: shop.ID, Name: shop.Name, InventoryValue: decimal.Zero}
		if countEmployees {
			g.Go(func() error {
				emps, err := uc.employees.ListByShop(gctx, shop.ID)
				if err != nil {
					return fmt.Errorf("dashboard: empleados de tienda %d: %w", shop.ID, err)
				}
				per[i].Employees = len(emps)
				return nil
			})
		}
		if countItems {
			g.Go(func() error {
				items, err := uc.items.ListByShop(gctx, shop.ID)
				if err != nil {
					return fmt.Errorf("dashboard: ítems de tienda %d: %w", shop.ID, err)
				}
				per[i].Items = len(items)
				per[i].InventoryValue = inventory.Value(items)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.Shops = len(shops)
	summary.PerShop = per
	for _, s := range per {
		summary.Employees += s.Employees
		summary.Items += s.Items
		summary.InventoryValue = summary.InventoryValue.Add(s.InventoryValue)
	}
	return summary, nil
}
