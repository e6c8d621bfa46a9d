package cli

import (
	"context"
	"fmt"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
)

func (a *App) shopsList(ctx context.Context, user *entity.User, args []string) error {
	if _, err := parse(a.newFlags("shops list"), args); err != nil {
		return err
	}
	var (
		shops []entity.Shop
		err   error
	)
	if user.Role == entity.RoleAdmin {
		shops, err = a.Shops.ListAll(ctx)
	} else {
		shops, err = a.Shops.ListByOwner(ctx)
	}
	if err != nil {
		return err
	}
	if len(shops) == 0 {
		fmt.Fprintln(a.Out, "No hay tiendas")
		return nil
	}
	w := newTable(a.Out)
	row(w, "ID", "NOMBRE", "DESCRIPCIÓN", "OWNER")
	for _, s := range shops {
		row(w, s.ID, s.Name, s.Description, s.OwnerID)
	}
	return w.Flush()
}

func (a *App) shopsGet(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("shops get")
	id := fs.Int64("id", 0, "id de la tienda")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	s, err := a.Shops.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "id: %d\nnombre: %s\ndescripción: %s\nowner: %d\n", s.ID, s.Name, s.Description, s.OwnerID)
	return nil
}

func (a *App) shopsCreate(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("shops create")
	var in dto.CreateShopRequest
	fs.StringVar(&in.Name, "name", "", "nombre")
	fs.StringVar(&in.Description, "description", "", "descripción")
	fs.Int64Var(&in.OwnerID, "owner", 0, "id del owner")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	s, err := a.Shops.Create(ctx, in)
	if err != nil {
		return err
	}
	if s != nil {
		fmt.Fprintf(a.Out, "id: %d\n", s.ID)
	}
	return nil
}

func (a *App) shopsUpdate(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("shops update")
	id := fs.Int64("id", 0, "id de la tienda")
	name := fs.String("name", "", "nombre")
	desc := fs.String("description", "", "descripción")
	owner := fs.Int64("owner", 0, "id del owner")
	set, err := parse(fs, args)
	if err != nil {
		return err
	}
	_, err = a.Shops.Update(ctx, *id, dto.UpdateShopRequest{
		Name:        optional(set, "name", *name),
		Description: optional(set, "description", *desc),
		OwnerID:     optional(set, "owner", *owner),
	})
	return err
}

func (a *App) shopsDelete(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("shops delete")
	id := fs.Int64("id", 0, "id de la tienda")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	return a.Shops.Delete(ctx, *id)
}
