package ports

import (
	"context"
	"encoding/json"
	"net/http"
)

// RequestOption modifica la petición HTTP antes de enviarla.
type RequestOption = func(*http.Request)

// APIClient transporte hacia el backend REST. Cada método devuelve el JSON de
// la respuesta (nil si fue 204).
type APIClient interface {
	Get(ctx context.Context, path string, opts ...RequestOption) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any, opts ...RequestOption) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any, opts ...RequestOption) (json.RawMessage, error)
	Delete(ctx context.Context, path string, opts ...RequestOption) (json.RawMessage, error)
}
