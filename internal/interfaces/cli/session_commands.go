package cli

import (
	"context"
	"fmt"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	"github.com/jhoicas/shop-crm/internal/domain/permission"
)

func (a *App) login(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("login")
	var in dto.LoginRequest
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Password, "password", "", "contraseña")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	a.Navigator.SetView("login")

	user, err := a.Auth.Login(ctx, in)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Fprintln(a.Out, "Sesión iniciada; no se pudo obtener el perfil del usuario")
	}
	return nil
}

func (a *App) logout(ctx context.Context, _ *entity.User, args []string) error {
	if _, err := parse(a.newFlags("logout"), args); err != nil {
		return err
	}
	return a.Auth.Logout(ctx)
}

func (a *App) register(ctx context.Context, _ *entity.User, args []string) error {
	fs := a.newFlags("register")
	var in dto.RegisterRequest
	fs.StringVar(&in.FirstName, "first", "", "nombre")
	fs.StringVar(&in.LastName, "last", "", "apellido")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Password, "password", "", "contraseña")
	fs.StringVar(&in.Role, "role", "", "rol (admin, owner, user)")
	if _, err := parse(fs, args); err != nil {
		return err
	}
	_, err := a.Auth.Register(ctx, in)
	return err
}

func (a *App) whoami(_ context.Context, user *entity.User, args []string) error {
	if _, err := parse(a.newFlags("whoami"), args); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s <%s>\nrol: %s\nid: %d\n", user.FullName(), user.Email, user.Role, user.ID)
	return nil
}

func (a *App) permissions(_ context.Context, user *entity.User, args []string) error {
	if _, err := parse(a.newFlags("permissions"), args); err != nil {
		return err
	}
	perms := permission.ForRole(user.Role)
	fmt.Fprintf(a.Out, "rol %s: %d permisos\n", user.Role, len(perms))
	for _, p := range perms {
		fmt.Fprintf(a.Out, "  %s\n", p)
	}
	return nil
}

func (a *App) dashboard(ctx context.Context, user *entity.User, args []string) error {
	if _, err := parse(a.newFlags("dashboard"), args); err != nil {
		return err
	}
	s, err := a.Dashboard.Summary(ctx, user)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Tiendas: %s\nEmpleados: %s\nÍtems: %s\nValor del inventario: %s\n",
		a.count(s.Shops), a.count(s.Employees), a.count(s.Items), a.money(s.InventoryValue))
	if len(s.PerShop) == 0 {
		return nil
	}
	fmt.Fprintln(a.Out)
	w := newTable(a.Out)
	row(w, "ID", "TIENDA", "EMPLEADOS", "ÍTEMS", "VALOR")
	for _, ps := range s.PerShop {
		row(w, ps.ShopID, ps.Name, a.count(ps.Employees), a.count(ps.Items), a.money(ps.InventoryValue))
	}
	return w.Flush()
}
