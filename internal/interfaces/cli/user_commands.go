package cli

import (
	"context"
	"fmt"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
)

func (a *App) usersList(ctx context.Context, _ *entity.User, args []string) error {
	if _, err := parse(a.newFlags("users list"), args); err != nil {
		return err
	}
	users, err := a.Users.List(ctx)
	if err != nil {
		return err
	}
	w := newTable(a.Out)
	row(w, "ID", "NOMBRE", "EMAIL", "ROL")
	for _, u := range users {
		row(w, u.ID, u.FullName(), u.Email, u.Role)
	}
	return w.Flush()
}

func (a *App) usersCreate(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("users create")
	var in dto.CreateUserRequest
	fs.StringVar(&in.FirstName, "first", "", "nombre")
	fs.StringVar(&in.LastName, "last", "", "apellido")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Role, "role", "", "rol (admin, owner, user)")
	fs.StringVar(&in.Password, "password", "", "contraseña")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	u, err := a.Users.Create(ctx, in)
	if err != nil {
		return err
	}
	if u != nil {
		fmt.Fprintf(a.Out, "id: %d\n", u.ID)
	}
	return nil
}

func (a *App) usersUpdate(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("users update")
	id := fs.Int64("id", 0, "id del usuario")
	first := fs.String("first", "", "nombre")
	last := fs.String("last", "", "apellido")
	email := fs.String("email", "", "email")
	role := fs.String("role", "", "rol")
	password := fs.String("password", "", "contraseña")
	set, err := parse(fs, args)
	if err != nil {
		return err
	}
	_, err = a.Users.Update(ctx, *id, dto.UpdateUserRequest{
		FirstName: optional(set, "first", *first),
		LastName:  optional(set, "last", *last),
		Email:     optional(set, "email", *email),
		Role:      optional(set, "role", *role),
		Password:  optional(set, "password", *password),
	})
	return err
}

func (a *App) usersDelete(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("users delete")
	id := fs.Int64("id", 0, "id del usuario")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	return a.Users.Delete(ctx, *id)
}
