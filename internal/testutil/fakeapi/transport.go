package fakeapi

import (
	"net/http"
)

// BaseURL URL base que aceptan los clientes del backend falso. El host no se
// resuelve: el transporte entrega la petición directamente a Fiber.
const BaseURL = "http://fakeapi.local"

type transport struct {
	app interface {
		Test(req *http.Request, msTimeout ...int) (*http.Response, error)
	}
}

// RoundTrip entrega req a la app Fiber en memoria.
func (t transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	return t.app.Test(req, -1)
}

// Transport http.RoundTripper en memoria hacia el backend.
func (b *Backend) Transport() http.RoundTripper { return transport{app: b.app} }

// HTTPClient *http.Client que usa Transport.
func (b *Backend) HTTPClient() *http.Client { return &http.Client{Transport: b.Transport()} }
