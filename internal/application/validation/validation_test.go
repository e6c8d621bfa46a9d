package validation_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/application/validation"
	"github.com/jhoicas/shop-crm/internal/domain"
)

func validItem() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name: "Jean", Brand: "Levis", Category: "pantalones", Size: "M",
		PurchasePrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(20),
	}
}

func TestStruct_ItemValido(t *testing.T) {
	assert.NoError(t, validation.Struct(validItem()))

	in := validItem()
	in.PhotoURL = "https://cdn.crm.kz/jean.png"
	assert.NoError(t, validation.Struct(in))
}

func TestStruct_PrecioNegativoRechazado(t *testing.T) {
	in := validItem()
	in.PurchasePrice = decimal.NewFromInt(-5)

	err := validation.Struct(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	fields := validation.Fields(err)
	assert.Contains(t, fields, "purchase_price")
	assert.NotContains(t, fields, "sale_price")
}

func TestStruct_PrecioCeroRechazado(t *testing.T) {
	in := validItem()
	in.SalePrice = decimal.Zero
	assert.Contains(t, validation.Fields(validation.Struct(in)), "sale_price")
}

func TestStruct_PrecioPositivoExactoEnDecimal(t *testing.T) {
	// Menor que el float64 más pequeño representable: en float sería 0.
	tiny := decimal.New(1, -400)
	require.True(t, tiny.IsPositive())

	in := validItem()
	in.PurchasePrice = tiny
	in.SalePrice = decimal.RequireFromString("0.01")
	assert.NoError(t, validation.Struct(in))

	err := validation.Struct(dto.UpdateItemRequest{SalePrice: &tiny})
	assert.NoError(t, err)

	negTiny := tiny.Neg()
	in.PurchasePrice = negTiny
	fields := validation.Fields(validation.Struct(in))
	assert.Equal(t, "purchase_price debe ser mayor que 0", fields["purchase_price"])
}

func TestStruct_ActualizacionParcialConPrecioCero(t *testing.T) {
	zero := decimal.Zero
	err := validation.Struct(dto.UpdateItemRequest{PurchasePrice: &zero})
	assert.Contains(t, validation.Fields(err), "purchase_price")
}

func TestStruct_ActualizacionParcialDeItem(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.UpdateItemRequest{}))

	neg := decimal.NewFromInt(-1)
	err := validation.Struct(dto.UpdateItemRequest{SalePrice: &neg})
	assert.Contains(t, validation.Fields(err), "sale_price")

	bad := "no-es-url"
	err = validation.Struct(dto.UpdateItemRequest{PhotoURL: &bad})
	assert.Contains(t, validation.Fields(err), "photo_url")
}

func TestStruct_Tienda(t *testing.T) {
	err := validation.Struct(dto.CreateShopRequest{Name: "X", Description: "abc"})
	fields := validation.Fields(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "description")

	assert.NoError(t, validation.Struct(dto.CreateShopRequest{Name: "Centro", Description: "Tienda del centro", OwnerID: 3}))
}

func TestStruct_UsuarioRolCerrado(t *testing.T) {
	in := dto.CreateUserRequest{FirstName: "Ana", LastName: "Ríos", Email: "ana@crm.kz", Role: "superuser"}
	assert.Contains(t, validation.Fields(validation.Struct(in)), "role")

	in.Role = "owner"
	assert.NoError(t, validation.Struct(in))
}

func TestStruct_EmpleadoYLogin(t *testing.T) {
	err := validation.Struct(dto.CreateEmployeeRequest{Name: "L", Email: "sin-arroba"})
	fields := validation.Fields(err)
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "role")

	err = validation.Struct(dto.LoginRequest{Email: "admin@crm.kz"})
	assert.Equal(t, map[string]string{"password": "password es obligatorio"}, validation.Fields(err))
}

func TestError_MensajeOrdenado(t *testing.T) {
	e := &validation.Error{Fields: map[string]string{"b": "B mal", "a": "A mal"}}
	assert.Equal(t, "datos inválidos: A mal; B mal", e.Error())
	assert.Equal(t, "A mal", e.Field("a"))
	assert.Nil(t, validation.Fields(errors.New("otro")))
}
