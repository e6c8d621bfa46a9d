// Package dto contiene los cuerpos JSON del backend (snake_case) y su
// conversión a las entidades del cliente (camelCase).
package dto

import "github.com/shopspring/decimal"

func init() {
	// El backend espera precios numéricos, no strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"error_code,omitempty"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
