package permission

import "github.com/jhoicas/shop-crm/internal/domain/entity"

// Requirement describe lo que exige un contenido protegido.
// Si Permission está definido se usa; si no, AnyOf; si ambos están vacíos no
// hay restricción.
type Requirement struct {
	Permission Permission
	AnyOf      []Permission
}

// Require construye un Requirement de un único permiso.
func Require(p Permission) Requirement { return Requirement{Permission: p} }

// RequireAny construye un Requirement que se cumple con cualquiera de los permisos.
func RequireAny(perms ...Permission) Requirement { return Requirement{AnyOf: perms} }

// Decision resultado de evaluar un Requirement. Un acceso denegado no es un
// error: quien llama muestra la vista de acceso denegado.
type Decision struct {
	Allowed bool
	Missing []Permission // permisos que habrían concedido el acceso
}

// Check evalúa req para user.
func Check(user *entity.User, req Requirement) Decision {
	switch {
	case req.Permission != "":
		if Has(user, req.Permission) {
			return Decision{Allowed: true}
		}
		return Decision{Missing: []Permission{req.Permission}}
	case req.AnyOf != nil:
		if HasAny(user, req.AnyOf) {
			return Decision{Allowed: true}
		}
		return Decision{Missing: append([]Permission(nil), req.AnyOf...)}
	default:
		return Decision{Allowed: true}
	}
}
