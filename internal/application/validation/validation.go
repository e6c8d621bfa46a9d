// Package validation valida los formularios antes de cualquier llamada de red.
// El resultado es un *Error con mensajes por campo, separado de los fallos de
// transporte.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/shop-crm/internal/domain"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Los campos se reportan con su nombre JSON (first_name, purchase_price...).
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		// decimal.Decimal llega a las reglas como su texto exacto; "positive"
		// compara en decimal, sin pasar por float64.
		validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
			if d, ok := v.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		_ = validate.RegisterValidation("positive", isPositive)
	})
	return validate
}

func isPositive(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(f.String())
	return err == nil && d.IsPositive()
}

// Error resultado de una validación fallida. Fields: campo JSON → mensaje.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "datos inválidos: " + strings.Join(parts, "; ")
}

// Is hace que errors.Is(err, domain.ErrInvalidInput) sea verdadero.
func (e *Error) Is(target error) bool { return target == domain.ErrInvalidInput }

// Field mensaje del campo, o "" si es válido.
func (e *Error) Field(name string) string { return e.Fields[name] }

// Struct valida s según sus etiquetas validate. Devuelve nil o *Error;
// otros errores (s no es struct) se devuelven tal cual.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return newError(verrs)
	}
	return fmt.Errorf("validation: %w", err)
}

// Fields extrae los mensajes por campo de err, o nil.
func Fields(err error) map[string]string {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Fields
	}
	return nil
}

func newError(errs validator.ValidationErrors) *Error {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		if _, seen := fields[field]; seen {
			continue
		}
		fields[field] = message(field, fe)
	}
	return &Error{Fields: fields}
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", field)
	case "email":
		return fmt.Sprintf("%s debe ser un email válido", field)
	case "url":
		return fmt.Sprintf("%s debe ser una URL válida", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser al menos %s", field, fe.Param())
	case "positive":
		return fmt.Sprintf("%s debe ser mayor que 0", field)
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s no cumple la regla '%s'", field, fe.Tag())
	}
}
