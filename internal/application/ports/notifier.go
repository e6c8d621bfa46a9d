package ports

// Variant tipo de notificación mostrada al usuario.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

// Notification mensaje visible para el usuario (equivalente a un toast).
type Notification struct {
	Title   string
	Message string
	Variant Variant
}

// Notifier define el puerto de salida para mostrar notificaciones al usuario.
// La implementación del CLI las imprime; en tests se graban para aserciones.
type Notifier interface {
	Notify(n Notification)
}

// Navigator abstrae la navegación entre vistas de la interfaz.
// La capa de API lo usa para forzar la vista de login cuando la sesión expira.
type Navigator interface {
	// CurrentView nombre de la vista activa (ViewLogin para la de login).
	CurrentView() string
	// NavigateToLogin fuerza la vista de login.
	NavigateToLogin()
}

// ViewLogin nombre de la vista de login.
const ViewLogin = "login"
