package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa de transporte y los casos de uso los envuelven; los llamadores los
// distinguen con errors.Is, nunca comparando mensajes.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
	ErrSessionExpired     = errors.New("sesión expirada, inicie sesión nuevamente")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrNetwork            = errors.New("no se pudo conectar con el servidor, verifique su conexión o intente más tarde")
	ErrInvalidResponse    = errors.New("el servidor devolvió una respuesta inválida, intente más tarde")
	ErrServer             = errors.New("error del servidor")
)
