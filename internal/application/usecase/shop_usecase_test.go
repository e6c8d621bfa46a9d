package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/application/ports"
	"github.com/jhoicas/shop-crm/internal/application/usecase"
	"github.com/jhoicas/shop-crm/internal/domain"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	"github.com/jhoicas/shop-crm/internal/testutil/fakeapi"
)

func TestShop_CrearNormalizaOwnerID(t *testing.T) {
	e := newEnv(t, fakeapi.AdminID)
	shops := usecase.NewShopUseCase(e.client, e.notes)

	shop, err := shops.Create(context.Background(), dto.CreateShopRequest{Name: "Centro", Description: "Tienda del centro", OwnerID: 3})
	require.NoError(t, err)
	require.NotNil(t, shop)
	assert.Equal(t, int64(3), shop.OwnerID)

	reqs := e.backend.Requests()
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"name":"Centro","description":"Tienda del centro","owner_id":3}`, string(reqs[0].Body))
	assert.Equal(t, ports.VariantSuccess, e.lastNotification(t).Variant)
}

func TestShop_EliminarUnaSolaPeticion(t *testing.T) {
	e := newEnv(t, fakeapi.AdminID, fakeapi.WithShops(entity.Shop{ID: 7, Name: "Siete", Description: "La séptima", OwnerID: 2}))
	shops := usecase.NewShopUseCase(e.client, e.notes)

	require.NoError(t, shops.Delete(context.Background(), 7))
	assert.Equal(t, 1, e.backend.Count(http.MethodDelete, "/admin/shops/7"))
	assert.Len(t, e.backend.Requests(), 1)

	n := e.lastNotification(t)
	assert.Equal(t, ports.VariantSuccess, n.Variant)
	assert.Equal(t, "Tienda eliminada correctamente", n.Message)
}

func TestShop_ListadosPorAlcance(t *testing.T) {
	e := newEnv(t, fakeapi.OwnerID)
	shops := usecase.NewShopUseCase(e.client, e.notes)

	own, err := shops.ListByOwner(context.Background())
	require.NoError(t, err)
	assert.Len(t, own, 2)
	for _, s := range own {
		assert.Equal(t, fakeapi.OwnerID, s.OwnerID)
	}

	_, err = shops.ListAll(context.Background())
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	assert.Empty(t, e.notes.All(), "las lecturas no notifican")
}

func TestShop_ListadoNoArregloEsVacio(t *testing.T) {
	e := newEnv(t, fakeapi.AdminID)
	e.backend.Fail(http.MethodGet, "/admin/shops", http.StatusOK, `{"data":"no es lista"}`)

	list, err := usecase.NewShopUseCase(e.client, e.notes).ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestShop_GetByIDYNoEncontrada(t *testing.T) {
	e := newEnv(t, fakeapi.OwnerID)
	shops := usecase.NewShopUseCase(e.client, e.notes)

	shop, err := shops.GetByID(context.Background(), fakeapi.DowntownShopID)
	require.NoError(t, err)
	assert.Equal(t, "Downtown Boutique", shop.Name)

	_, err = shops.GetByID(context.Background(), 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestShop_ActualizacionParcial(t *testing.T) {
	e := newEnv(t, fakeapi.OwnerID)
	shops := usecase.NewShopUseCase(e.client, e.notes)
	desc := "Nueva descripción"

	shop, err := shops.Update(context.Background(), fakeapi.OutletShopID, dto.UpdateShopRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Suburban Outlet", shop.Name)
	assert.Equal(t, desc, shop.Description)
	assert.JSONEq(t, `{"description":"Nueva descripción"}`, string(e.backend.Requests()[0].Body))
}

func TestShop_ValidacionSinPeticiones(t *testing.T) {
	e := newEnv(t, fakeapi.AdminID)
	shops := usecase.NewShopUseCase(e.client, e.notes)

	_, err := shops.Create(context.Background(), dto.CreateShopRequest{Name: "X", Description: "Y"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.ErrorIs(t, shops.Delete(context.Background(), 0), domain.ErrInvalidInput)
	assert.Empty(t, e.backend.Requests())
	assert.Empty(t, e.notes.All())
}

func TestShop_SesionExpiradaNotificaUnaVez(t *testing.T) {
	e := newEnv(t, fakeapi.AdminID)
	require.NoError(t, e.sess.SetToken(context.Background(), "vencido"))
	shops := usecase.NewShopUseCase(e.client, e.notes)

	err := shops.Delete(context.Background(), fakeapi.DowntownShopID)
	assert.True(t, errors.Is(err, domain.ErrSessionExpired))
	assert.Len(t, e.notes.All(), 1)
	assert.Equal(t, 1, e.nav.redirects)
	assert.Nil(t, e.sess.User())
	_, ok := e.backend.Shop(fakeapi.DowntownShopID)
	assert.True(t, ok)
}
