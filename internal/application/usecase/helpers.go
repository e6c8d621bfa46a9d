// Package usecase contiene las operaciones por entidad sobre el backend REST:
// validación previa, normalización snake_case ⇄ camelCase y notificación del
// resultado de cada mutación.
package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/shop-crm/internal/application/ports"
	"github.com/jhoicas/shop-crm/internal/application/validation"
	"github.com/jhoicas/shop-crm/internal/domain"
)

// ── Notificaciones ────────────────────────────────────────────────────────────

const (
	titleSuccess = "Operación exitosa"
	titleError   = "Error"
)

type userMessager interface {
	UserMessage() string
}

// failureMessage mensaje normalizado de la capa de API, o fallback.
func failureMessage(err error, fallback string) string {
	var um userMessager
	if errors.As(err, &um) {
		if m := um.UserMessage(); m != "" {
			return m
		}
	}
	return fallback
}

// mutation ejecuta call y publica el resultado. La sesión expirada ya fue
// notificada por el transporte y no se repite.
func mutation(n ports.Notifier, success, failure string, call func() (json.RawMessage, error)) (json.RawMessage, error) {
	raw, err := call()
	if err != nil {
		if !errors.Is(err, domain.ErrSessionExpired) {
			n.Notify(ports.Notification{Title: titleError, Message: failureMessage(err, failure), Variant: ports.VariantError})
		}
		return nil, err
	}
	n.Notify(ports.Notification{Title: titleSuccess, Message: success, Variant: ports.VariantSuccess})
	return raw, nil
}

type nopNotifier struct{}

func (nopNotifier) Notify(ports.Notification) {}

func notifierOrNop(n ports.Notifier) ports.Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

// ── Decodificación ────────────────────────────────────────────────────────────

// decodeList decodifica un arreglo JSON. Cualquier otra forma de cuerpo
// (objeto, vacío) se trata como lista vacía.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	return out, nil
}

// decodeOne decodifica un objeto JSON. nil (204) o "{}" devuelven (nil, nil).
func decodeOne[T any](raw json.RawMessage) (*T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("{}")) || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	return &out, nil
}

// ── Validación de rutas ───────────────────────────────────────────────────────

// requireID rechaza ids no positivos antes de construir la ruta.
func requireID(field string, id int64) error {
	if id <= 0 {
		return &validation.Error{Fields: map[string]string{field: field + " debe ser un id positivo"}}
	}
	return nil
}
