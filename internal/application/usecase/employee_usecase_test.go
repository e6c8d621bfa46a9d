package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/application/usecase"
	"github.com/jhoicas/shop-crm/internal/domain"
	"github.com/jhoicas/shop-crm/internal/testutil/fakeapi"
)

func TestEmployee_CrearListarEliminar(t *testing.T) {
	e := newEnv(t, fakeapi.OwnerID)
	employees := usecase.NewEmployeeUseCase(e.client, e.notes)
	ctx := context.Background()

	emp, err := employees.Create(ctx, fakeapi.OutletShopID, dto.CreateEmployeeRequest{Name: "Lucía", Email: "lucia@crm.kz", Role: "employee"})
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, fakeapi.OutletShopID, emp.ShopID)
	assert.Equal(t, "Empleado agregado correctamente", e.lastNotification(t).Message)

	list, err := employees.ListByShop(ctx, fakeapi.OutletShopID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, employees.Delete(ctx, fakeapi.OutletShopID, emp.ID))
	path := "/owner/shops/2/employees/" + itoa(emp.ID)
	assert.Equal(t, 1, e.backend.Count(http.MethodDelete, path))
	assert.Len(t, e.backend.Employees(fakeapi.OutletShopID), 1)
}

func TestEmployee_ValidacionYTiendaInexistente(t *testing.T) {
	e := newEnv(t, fakeapi.AdminID)
	employees := usecase.NewEmployeeUseCase(e.client, e.notes)

	_, err := employees.Create(context.Background(), fakeapi.DowntownShopID, dto.CreateEmployeeRequest{Name: "A", Email: "x"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, e.backend.Requests())

	_, err = employees.Create(context.Background(), 404, dto.CreateEmployeeRequest{Name: "Ana", Email: "ana@crm.kz", Role: "manager"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
