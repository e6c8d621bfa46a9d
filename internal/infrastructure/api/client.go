// Package api es la primitiva de transporte hacia el backend REST del CRM:
// autenticación bearer, JSON, invalidación global de sesión ante 401 y
// clasificación de fallos en *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/shop-crm/internal/application/ports"
	"github.com/jhoicas/shop-crm/internal/application/session"
	"github.com/jhoicas/shop-crm/internal/domain"
)

// DefaultBaseURL backend local.
const DefaultBaseURL = "http://localhost:8080"

// DefaultMaxResponseBytes límite por defecto del cuerpo de respuesta (10 MiB).
const DefaultMaxResponseBytes int64 = 10 << 20

// ErrResponseTooLarge el cuerpo superó el límite de lectura. Se clasifica como
// respuesta inválida.
var ErrResponseTooLarge = errors.New("respuesta del servidor demasiado grande")

// Client cliente HTTP del CRM. No reintenta, no deduplica y no impone timeout
// salvo que se configure uno con WithTimeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	notifier   ports.Notifier
	navigator  ports.Navigator
	log        zerolog.Logger
	requestID  func() string
	maxBody    int64
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transportes personalizados).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout fija un timeout de red por petición.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithNotifier define dónde se publica la notificación de sesión expirada.
func WithNotifier(n ports.Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithNavigator define cómo se fuerza la vista de login.
func WithNavigator(n ports.Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

// WithMaxResponseBytes cambia el límite del cuerpo de respuesta. Valores <= 0
// se ignoran.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// WithLogger logger para trazas de peticiones (nivel debug).
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient construye el cliente contra baseURL usando sess para el token.
func NewClient(baseURL string, sess *session.Session, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		session:    sess,
		notifier:   nopNotifier{},
		navigator:  nopNavigator{},
		log:        zerolog.Nop(),
		requestID:  uuid.NewString,
		maxBody:    DefaultMaxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session sesión que usa el cliente.
func (c *Client) Session() *session.Session { return c.session }

// RequestOption modifica la petición antes de enviarla.
type RequestOption = ports.RequestOption

var _ ports.APIClient = (*Client)(nil)

// WithHeader sobreescribe (o añade) una cabecera, incluidas Content-Type y Authorization.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// Get GET path.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts...)
}

// Post POST path con body serializado a JSON.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, body, opts...)
}

// Put PUT path con body serializado a JSON.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, path, body, opts...)
}

// Delete DELETE path.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, opts...)
}

// Do ejecuta la petición y devuelve el JSON de la respuesta.
//
// Resultado:
//   - 204 → (nil, nil): sin contenido.
//   - 2xx con cuerpo vacío → "{}".
//   - 2xx con JSON → el JSON tal cual.
//   - 401 → sesión limpiada, notificación, login forzado y *Error KindSessionExpired.
//   - otro no-2xx → *Error KindHTTP con el mensaje del backend.
//   - sin respuesta → *Error KindNetwork; JSON malformado → *Error KindInvalidResponse.
//   - cuerpo mayor que el límite → *Error KindInvalidResponse que envuelve ErrResponseTooLarge.
//   - cancelación del contexto → ctx.Err() sin envolver.
func (c *Client) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("api: crear HTTP request: %w", err)
	}
	requestID := c.requestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).
			Msg("api: sin respuesta del servidor")
		return nil, &Error{Kind: KindNetwork, Message: domain.ErrNetwork.Error(), Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("duration", time.Since(start)).
		Msg("api: respuesta")

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	// El 401 invalida la sesión aunque el cuerpo no se pueda leer; el cuerpo
	// solo aporta el mensaje.
	if resp.StatusCode == http.StatusUnauthorized {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
		return nil, c.expireSession(ctx, raw)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Kind: KindNetwork, Message: domain.ErrNetwork.Error(), StatusCode: resp.StatusCode, Err: err}
	}
	tooLarge := int64(len(raw)) > c.maxBody
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp.StatusCode, raw[:min(int64(len(raw)), c.maxBody)])
	}
	if tooLarge {
		c.log.Warn().Str("path", path).Str("request_id", requestID).Int64("limit", c.maxBody).
			Msg("api: respuesta excede el límite")
		return nil, &Error{
			Kind:       KindInvalidResponse,
			Message:    ErrResponseTooLarge.Error(),
			StatusCode: resp.StatusCode,
			Err:        ErrResponseTooLarge,
		}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(trimmed) {
		c.log.Warn().Str("path", path).Str("request_id", requestID).Msg("api: JSON inválido en la respuesta")
		return nil, &Error{
			Kind:       KindInvalidResponse,
			Message:    domain.ErrInvalidResponse.Error(),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("api: cuerpo no es JSON válido"),
		}
	}
	return json.RawMessage(trimmed), nil
}

// expireSession invalidación global ante 401, sin importar el cuerpo.
func (c *Client) expireSession(ctx context.Context, raw []byte) *Error {
	// El contexto del request puede estar por vencer; la limpieza no debe depender de él.
	if err := c.session.Clear(context.WithoutCancel(ctx)); err != nil {
		c.log.Error().Err(err).Msg("api: no se pudo limpiar la sesión persistida")
	}

	msg, code := parseErrorBody(raw)
	if msg == "" {
		msg = domain.ErrSessionExpired.Error()
	}
	c.notifier.Notify(ports.Notification{
		Title:   "Error de autenticación",
		Message: msg,
		Variant: ports.VariantError,
	})
	if c.navigator.CurrentView() != ports.ViewLogin {
		c.navigator.NavigateToLogin()
	}
	return &Error{Kind: KindSessionExpired, Message: msg, StatusCode: http.StatusUnauthorized, Code: code}
}

type nopNotifier struct{}

func (nopNotifier) Notify(ports.Notification) {}

type nopNavigator struct{}

func (nopNavigator) CurrentView() string { return "" }
func (nopNavigator) NavigateToLogin()    {}
