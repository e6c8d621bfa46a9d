package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/application/usecase"
	"github.com/jhoicas/shop-crm/internal/application/validation"
	"github.com/jhoicas/shop-crm/internal/domain"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	"github.com/jhoicas/shop-crm/internal/testutil/fakeapi"
)

func newItem() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name: "Gorra", Brand: "NewEra", Category: "accesorios", Size: "U",
		PurchasePrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(25),
	}
}

func TestItem_PrecioNegativoSinPeticiones(t *testing.T) {
	e := newEnv(t, fakeapi.OwnerID)
	items := usecase.NewItemUseCase(e.client, e.notes)
	in := newItem()
	in.PurchasePrice = decimal.NewFromInt(-5)

	_, err := items.Create(context.Background(), fakeapi.DowntownShopID, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, validation.Fields(err), "purchase_price")
	assert.Empty(t, e.backend.Requests())
}

func TestItem_CrearYListarConPlaceholder(t *testing.T) {
	e := newEnv(t, fakeapi.OwnerID)
	items := usecase.NewItemUseCase(e.client, e.notes)

	created, err := items.Create(context.Background(), fakeapi.OutletShopID, newItem())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, fakeapi.OutletShopID, created.ShopID)
	assert.Equal(t, entity.PlaceholderPhotoURL, created.PhotoURL)
	assert.False(t, created.CreatedAt.IsZero())
	assert.JSONEq(t,
		`{"name":"Gorra","brand":"NewEra","category":"accesorios","size":"U","purchase_price":10,"sale_price":25}`,
		string(e.backend.Requests()[0].Body))

	list, err := items.ListByShop(context.Background(), fakeapi.OutletShopID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "Ítem agregado correctamente", e.lastNotification(t).Message)
}

func TestItem_ActualizacionParcial(t *testing.T) {
	e := newEnv(t, fakeapi.OwnerID)
	items := usecase.NewItemUseCase(e.client, e.notes)
	price := decimal.RequireFromString("99.5")

	updated, err := items.Update(context.Background(), fakeapi.DowntownShopID, 1, dto.UpdateItemRequest{SalePrice: &price})
	require.NoError(t, err)
	assert.True(t, updated.SalePrice.Equal(price))
	assert.Equal(t, "Denim Jacket", updated.Name)
	assert.JSONEq(t, `{"sale_price":99.5}`, string(e.backend.Requests()[0].Body))
}

func TestItem_EliminarYNoEncontrado(t *testing.T) {
	e := newEnv(t, fakeapi.OwnerID)
	items := usecase.NewItemUseCase(e.client, e.notes)

	require.NoError(t, items.Delete(context.Background(), fakeapi.DowntownShopID, 2))
	assert.Len(t, e.backend.Items(fakeapi.DowntownShopID), 1)

	err := items.Delete(context.Background(), fakeapi.DowntownShopID, 2)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "ítem no encontrado", e.lastNotification(t).Message)
}

func TestItem_ErrorDelServidorUsaMensajeGenerico(t *testing.T) {
	e := newEnv(t, fakeapi.OwnerID)
	e.backend.Fail(http.MethodPost, "/owner/shops/1/items", http.StatusInternalServerError, "")

	_, err := usecase.NewItemUseCase(e.client, e.notes).Create(context.Background(), fakeapi.DowntownShopID, newItem())
	assert.True(t, errors.Is(err, domain.ErrServer))
	assert.Equal(t, "error del servidor: 500", e.lastNotification(t).Message)
}

func TestItem_UsuarioSoloLectura(t *testing.T) {
	e := newEnv(t, fakeapi.UserID)
	items := usecase.NewItemUseCase(e.client, e.notes)

	_, err := items.Create(context.Background(), fakeapi.DowntownShopID, newItem())
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}
