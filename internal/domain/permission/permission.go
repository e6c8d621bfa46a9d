// Package permission resuelve qué operaciones puede realizar cada rol.
//
// La tabla es una conveniencia de UX del cliente: decide qué comandos se
// muestran o se bloquean. El backend vuelve a autorizar cada operación
// privilegiada por su cuenta (rutas /admin/... y /owner/...).
package permission

import "github.com/jhoicas/shop-crm/internal/domain/entity"

// Permission identificador de capacidad con formato "acción:recurso".
type Permission string

// Permisos de tiendas.
const (
	ViewShops  Permission = "view:shops"
	CreateShop Permission = "create:shop"
	EditShop   Permission = "edit:shop"
	DeleteShop Permission = "delete:shop"
)

// Permisos de empleados.
const (
	ViewEmployees  Permission = "view:employees"
	AddEmployee    Permission = "add:employee"
	RemoveEmployee Permission = "remove:employee"
)

// Permisos de inventario.
const (
	ViewInventory Permission = "view:inventory"
	AddItem       Permission = "add:item"
	EditItem      Permission = "edit:item"
	DeleteItem    Permission = "delete:item"
)

// Permisos de gestión de usuarios.
const (
	ViewUsers  Permission = "view:users"
	CreateUser Permission = "create:user"
	EditUser   Permission = "edit:user"
	DeleteUser Permission = "delete:user"
)

var (
	adminPermissions = []Permission{
		ViewShops, CreateShop, EditShop, DeleteShop,
		ViewEmployees, AddEmployee, RemoveEmployee,
		ViewInventory, AddItem, EditItem, DeleteItem,
		ViewUsers, CreateUser, EditUser, DeleteUser,
	}
	ownerPermissions = []Permission{
		ViewShops, CreateShop, EditShop,
		ViewEmployees, AddEmployee, RemoveEmployee,
		ViewInventory, AddItem, EditItem, DeleteItem,
	}
	userPermissions = []Permission{
		ViewShops,
		ViewInventory,
	}
)

// All devuelve todos los permisos conocidos.
func All() []Permission {
	return ForRole(entity.RoleAdmin)
}

// ForRole devuelve una copia de los permisos del rol. Un rol desconocido
// devuelve un slice vacío (denegar por defecto).
func ForRole(role entity.Role) []Permission {
	var perms []Permission
	switch role {
	case entity.RoleAdmin:
		perms = adminPermissions
	case entity.RoleOwner:
		perms = ownerPermissions
	case entity.RoleUser:
		perms = userPermissions
	default:
		return []Permission{}
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// RoleHas indica si el rol tiene el permiso p.
func RoleHas(role entity.Role, p Permission) bool {
	for _, granted := range ForRole(role) {
		if granted == p {
			return true
		}
	}
	return false
}

// Has indica si user tiene el permiso p. Un usuario nil (no autenticado) no
// tiene ningún permiso.
func Has(user *entity.User, p Permission) bool {
	if user == nil {
		return false
	}
	return RoleHas(user.Role, p)
}

// HasAny indica si user tiene al menos uno de los permisos. Lista vacía → false.
func HasAny(user *entity.User, perms []Permission) bool {
	for _, p := range perms {
		if Has(user, p) {
			return true
		}
	}
	return false
}

// HasAll indica si user tiene todos los permisos. Con lista vacía devuelve true
// para un usuario autenticado y false para nil.
func HasAll(user *entity.User, perms []Permission) bool {
	if user == nil {
		return false
	}
	for _, p := range perms {
		if !Has(user, p) {
			return false
		}
	}
	return true
}
