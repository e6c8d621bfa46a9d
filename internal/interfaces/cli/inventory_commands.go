package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
)

// ── Empleados ─────────────────────────────────────────────────────────────────

func (a *App) employeesList(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("employees list")
	shop := fs.Int64("shop", 0, "id de la tienda")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	emps, err := a.Employees.ListByShop(ctx, *shop)
	if err != nil {
		return err
	}
	if len(emps) == 0 {
		fmt.Fprintln(a.Out, "No hay empleados")
		return nil
	}
	w := newTable(a.Out)
	row(w, "ID", "NOMBRE", "EMAIL", "ROL")
	for _, e := range emps {
		row(w, e.ID, e.Name, e.Email, e.Role)
	}
	return w.Flush()
}

func (a *App) employeesAdd(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("employees add")
	shop := fs.Int64("shop", 0, "id de la tienda")
	var in dto.CreateEmployeeRequest
	fs.StringVar(&in.Name, "name", "", "nombre")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Role, "role", "", "rol (employee, manager...)")
	fs.StringVar(&in.Password, "password", "", "contraseña inicial")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	_, err := a.Employees.Create(ctx, *shop, in)
	return err
}

func (a *App) employeesRemove(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("employees remove")
	shop := fs.Int64("shop", 0, "id de la tienda")
	id := fs.Int64("id", 0, "id del empleado")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	return a.Employees.Delete(ctx, *shop, *id)
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

func (a *App) itemsList(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("items list")
	shop := fs.Int64("shop", 0, "id de la tienda")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	items, err := a.Items.ListByShop(ctx, *shop)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.Out, "No hay ítems")
		return nil
	}
	w := newTable(a.Out)
	row(w, "ID", "NOMBRE", "MARCA", "CATEGORÍA", "TALLA", "COMPRA", "VENTA")
	for _, it := range items {
		row(w, it.ID, it.Name, it.Brand, it.Category, it.Size, a.money(it.PurchasePrice), a.money(it.SalePrice))
	}
	return w.Flush()
}

func (a *App) itemsAdd(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("items add")
	shop := fs.Int64("shop", 0, "id de la tienda")
	var in dto.CreateItemRequest
	var purchase, sale decimalFlag
	fs.StringVar(&in.Name, "name", "", "nombre")
	fs.StringVar(&in.Brand, "brand", "", "marca")
	fs.StringVar(&in.Category, "category", "", "categoría")
	fs.StringVar(&in.Size, "size", "", "talla")
	fs.Var(&purchase, "purchase", "precio de compra")
	fs.Var(&sale, "sale", "precio de venta")
	fs.StringVar(&in.PhotoURL, "photo", "", "URL de la foto")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	in.PurchasePrice, in.SalePrice = purchase.value, sale.value
	_, err := a.Items.Create(ctx, *shop, in)
	return err
}

func (a *App) itemsUpdate(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("items update")
	shop := fs.Int64("shop", 0, "id de la tienda")
	id := fs.Int64("id", 0, "id del ítem")
	name := fs.String("name", "", "nombre")
	brand := fs.String("brand", "", "marca")
	category := fs.String("category", "", "categoría")
	size := fs.String("size", "", "talla")
	photo := fs.String("photo", "", "URL de la foto")
	var purchase, sale decimalFlag
	fs.Var(&purchase, "purchase", "precio de compra")
	fs.Var(&sale, "sale", "precio de venta")
	set, err := parse(fs, args)
	if err != nil {
		return err
	}
	_, err = a.Items.Update(ctx, *shop, *id, dto.UpdateItemRequest{
		Name:          optional(set, "name", *name),
		Brand:         optional(set, "brand", *brand),
		Category:      optional(set, "category", *category),
		Size:          optional(set, "size", *size),
		PurchasePrice: optional(set, "purchase", purchase.value),
		SalePrice:     optional(set, "sale", sale.value),
		PhotoURL:      optional(set, "photo", *photo),
	})
	return err
}

func (a *App) itemsDelete(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("items delete")
	shop := fs.Int64("shop", 0, "id de la tienda")
	id := fs.Int64("id", 0, "id del ítem")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	return a.Items.Delete(ctx, *shop, *id)
}

func (a *App) itemsReport(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("items report")
	shop := fs.Int64("shop", 0, "id de la tienda")
	out := fs.String("out", "", "archivo PDF de salida")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	if *out == "" {
		return errUsage
	}
	doc, err := a.Reports.InventoryPDF(ctx, *shop)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, doc, 0o644); err != nil {
		return fmt.Errorf("guardar reporte: %w", err)
	}
	fmt.Fprintf(a.Out, "Reporte guardado en %s (%s bytes)\n", *out, a.count(len(doc)))
	return nil
}
