package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/shop-crm/internal/domain"
)

// Kind clasificación de un fallo de la capa de transporte.
type Kind int

const (
	// KindHTTP respuesta no-2xx del backend (distinta de 401).
	KindHTTP Kind = iota + 1
	// KindSessionExpired respuesta 401: la sesión ya se invalidó.
	KindSessionExpired
	// KindNetwork no se obtuvo respuesta.
	KindNetwork
	// KindInvalidResponse respuesta 2xx con JSON malformado.
	KindInvalidResponse
)

func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindSessionExpired:
		return "session_expired"
	case KindNetwork:
		return "network"
	case KindInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// Error error normalizado de la API: mensaje para el usuario, status HTTP
// (0 si no hubo respuesta) y código de error del backend si lo envió.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Code       string
	Err        error // causa de bajo nivel (red, JSON), si existe
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api: %s (status %d)", e.Kind, e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage mensaje apto para mostrar al usuario.
func (e *Error) UserMessage() string { return e.Message }

// Is permite errors.Is(err, domain.ErrX) sin inspeccionar mensajes.
func (e *Error) Is(target error) bool {
	switch target {
	case domain.ErrSessionExpired:
		return e.Kind == KindSessionExpired
	case domain.ErrNetwork:
		return e.Kind == KindNetwork
	case domain.ErrInvalidResponse:
		return e.Kind == KindInvalidResponse
	case domain.ErrServer:
		return e.Kind == KindHTTP
	case domain.ErrForbidden:
		return e.Kind == KindHTTP && e.StatusCode == http.StatusForbidden
	case domain.ErrNotFound:
		return e.Kind == KindHTTP && e.StatusCode == http.StatusNotFound
	case domain.ErrConflict:
		return e.Kind == KindHTTP && e.StatusCode == http.StatusConflict
	case domain.ErrInvalidInput:
		return e.Kind == KindHTTP && (e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity)
	}
	return false
}

// StatusCode devuelve el status HTTP asociado a err, o 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Message devuelve el mensaje normalizado de un *Error. ok es false si err no
// proviene de la capa de API.
func Message(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// errorBody cuerpo de error del backend. Se aceptan error_code y code.
type errorBody struct {
	Message   string `json:"message"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	Code      string `json:"code"`
}

// parseErrorBody extrae mensaje y código; un cuerpo vacío o no-JSON devuelve ceros.
func parseErrorBody(raw []byte) (message, code string) {
	var body errorBody
	if len(raw) == 0 || json.Unmarshal(raw, &body) != nil {
		return "", ""
	}
	message = body.Message
	if message == "" {
		message = body.Error
	}
	code = body.ErrorCode
	if code == "" {
		code = body.Code
	}
	return message, code
}

func newHTTPError(status int, raw []byte) *Error {
	msg, code := parseErrorBody(raw)
	if msg == "" {
		msg = fmt.Sprintf("error del servidor: %d", status)
	}
	return &Error{Kind: KindHTTP, Message: msg, StatusCode: status, Code: code}
}
