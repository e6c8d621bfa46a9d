package fakeapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/shop-crm/internal/domain/entity"
)

// Tiendas e ítems sembrados.
const (
	DowntownShopID int64 = 1
	OutletShopID   int64 = 2
)

func (b *Backend) seed() {
	b.users = map[int64]*userRecord{
		AdminID: {User: entity.User{ID: AdminID, FirstName: "Admin", LastName: "CRM", Email: AdminEmail, Role: entity.RoleAdmin}, password: Password},
		OwnerID: {User: entity.User{ID: OwnerID, FirstName: "Shop", LastName: "Owner", Email: OwnerEmail, Role: entity.RoleOwner}, password: Password},
		UserID:  {User: entity.User{ID: UserID, FirstName: "Regular", LastName: "User", Email: UserEmail, Role: entity.RoleUser}, password: Password},
	}
	b.shops = map[int64]*entity.Shop{
		DowntownShopID: {ID: DowntownShopID, Name: "Downtown Boutique", Description: "Tienda de ropa en el centro", OwnerID: OwnerID},
		OutletShopID:   {ID: OutletShopID, Name: "Suburban Outlet", Description: "Outlet con gran variedad", OwnerID: OwnerID},
	}
	b.employees = map[int64]*entity.Employee{
		1: {ID: 1, ShopID: DowntownShopID, Name: "John Smith", Email: "john@crm.kz", Role: "manager"},
		2: {ID: 2, ShopID: DowntownShopID, Name: "Sarah Johnson", Email: "sarah@crm.kz", Role: "employee"},
		3: {ID: 3, ShopID: OutletShopID, Name: "Michael Brown", Email: "michael@crm.kz", Role: "manager"},
	}
	created := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	b.items = map[int64]*entity.Item{
		1: {ID: 1, ShopID: DowntownShopID, Name: "Denim Jacket", Brand: "Levis", Category: "chaquetas", Size: "M",
			PurchasePrice: decimal.NewFromInt(45), SalePrice: decimal.RequireFromString("89.99"),
			PhotoURL: "https://cdn.crm.kz/denim.png", CreatedAt: created, UpdatedAt: created},
		2: {ID: 2, ShopID: DowntownShopID, Name: "Cotton T-Shirt", Brand: "Hanes", Category: "camisetas", Size: "L",
			PurchasePrice: decimal.NewFromInt(8), SalePrice: decimal.RequireFromString("19.99"),
			CreatedAt: created, UpdatedAt: created},
		3: {ID: 3, ShopID: OutletShopID, Name: "Running Shoes", Brand: "Nike", Category: "calzado", Size: "42",
			PurchasePrice: decimal.NewFromInt(60), SalePrice: decimal.NewFromInt(120),
			CreatedAt: created, UpdatedAt: created},
	}
}
