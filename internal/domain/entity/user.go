package entity

// Role identifica el nivel de autoridad de un User. Es un vocabulario cerrado:
// solo las constantes de abajo son roles válidos.
type Role string

// Roles válidos para User.
const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
	RoleUser  Role = "user"
)

// Roles devuelve todos los roles conocidos en orden de mayor a menor autoridad.
func Roles() []Role {
	return []Role{RoleAdmin, RoleOwner, RoleUser}
}

// ParseRole convierte un string en Role. ok es false si el rol no existe.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleOwner, RoleUser:
		return r, true
	default:
		return r, false
	}
}

// Valid indica si r pertenece al vocabulario cerrado de roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

func (r Role) String() string { return string(r) }

// User representa un usuario autenticable del CRM.
// Los tags JSON corresponden a la copia cacheada en el almacenamiento de sesión.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// FullName devuelve "Nombre Apellido" sin espacios sobrantes.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
