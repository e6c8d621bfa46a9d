package cli

import (
	p "github.com/jhoicas/shop-crm/internal/domain/permission"
)

func (a *App) commandTable() []*command {
	return []*command{
		// ── Sesión ────────────────────────────────────────────────────────────
		{name: "login", usage: "login -email <email> -password <password>", run: a.login},
		{name: "logout", usage: "logout", run: a.logout},
		{name: "register", usage: "register -first <nombre> -last <apellido> -email <email> -password <password> [-role user]", run: a.register},
		{name: "whoami", usage: "whoami", needsUser: true, run: a.whoami},
		{name: "permissions", usage: "permissions", needsUser: true, run: a.permissions},
		{name: "dashboard", usage: "dashboard", needsUser: true, run: a.dashboard},

		// ── Tiendas ───────────────────────────────────────────────────────────
		{name: "shops list", usage: "shops list", needsUser: true, requires: p.Require(p.ViewShops), run: a.shopsList},
		{name: "shops get", usage: "shops get -id <id>", needsUser: true, requires: p.Require(p.ViewShops), run: a.shopsGet},
		{name: "shops create", usage: "shops create -name <nombre> -description <texto> [-owner <id>]", needsUser: true, requires: p.Require(p.CreateShop), run: a.shopsCreate},
		{name: "shops update", usage: "shops update -id <id> [-name] [-description] [-owner]", needsUser: true, requires: p.Require(p.EditShop), run: a.shopsUpdate},
		{name: "shops delete", usage: "shops delete -id <id>", needsUser: true, requires: p.Require(p.DeleteShop), run: a.shopsDelete},

		// ── Empleados ─────────────────────────────────────────────────────────
		{name: "employees list", usage: "employees list -shop <id>", needsUser: true, requires: p.Require(p.ViewEmployees), run: a.employeesList},
		{name: "employees add", usage: "employees add -shop <id> -name <nombre> -email <email> -role <rol>", needsUser: true, requires: p.Require(p.AddEmployee), run: a.employeesAdd},
		{name: "employees remove", usage: "employees remove -shop <id> -id <id>", needsUser: true, requires: p.Require(p.RemoveEmployee), run: a.employeesRemove},

		// ── Inventario ────────────────────────────────────────────────────────
		{name: "items list", usage: "items list -shop <id>", needsUser: true, requires: p.Require(p.ViewInventory), run: a.itemsList},
		{name: "items add", usage: "items add -shop <id> -name -brand -category -size -purchase <precio> -sale <precio> [-photo <url>]", needsUser: true, requires: p.Require(p.AddItem), run: a.itemsAdd},
		{name: "items update", usage: "items update -shop <id> -id <id> [-name] [-brand] [-category] [-size] [-purchase] [-sale] [-photo]", needsUser: true, requires: p.Require(p.EditItem), run: a.itemsUpdate},
		{name: "items delete", usage: "items delete -shop <id> -id <id>", needsUser: true, requires: p.Require(p.DeleteItem), run: a.itemsDelete},
		{name: "items report", usage: "items report -shop <id> -out <archivo.pdf>", needsUser: true, requires: p.Require(p.ViewInventory), run: a.itemsReport},

		// ── Usuarios ──────────────────────────────────────────────────────────
		{name: "users list", usage: "users list", needsUser: true, requires: p.Require(p.ViewUsers), run: a.usersList},
		{name: "users create", usage: "users create -first -last -email -role [-password]", needsUser: true, requires: p.Require(p.CreateUser), run: a.usersCreate},
		{name: "users update", usage: "users update -id <id> [-first] [-last] [-email] [-role] [-password]", needsUser: true, requires: p.Require(p.EditUser), run: a.usersUpdate},
		{name: "users delete", usage: "users delete -id <id>", needsUser: true, requires: p.Require(p.DeleteUser), run: a.usersDelete},
	}
}
