package cli_test

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-crm/internal/application/session"
	"github.com/jhoicas/shop-crm/internal/application/usecase"
	"github.com/jhoicas/shop-crm/internal/infrastructure/api"
	"github.com/jhoicas/shop-crm/internal/infrastructure/notify"
	"github.com/jhoicas/shop-crm/internal/infrastructure/pdf"
	"github.com/jhoicas/shop-crm/internal/interfaces/cli"
	"github.com/jhoicas/shop-crm/internal/testutil/fakeapi"
	"github.com/jhoicas/shop-crm/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type harness struct {
	backend *fakeapi.Backend
	store   *session.MemoryStore
	out     *bytes.Buffer
	errOut  *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		backend: fakeapi.New(),
		store:   session.NewMemoryStore(),
		out:     &bytes.Buffer{},
		errOut:  &bytes.Buffer{},
	}
}

// run arma el CLI sobre el mismo store (como invocaciones sucesivas del
// binario) y ejecuta args.
func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()
	h.out.Reset()
	h.errOut.Reset()
	ctx := context.Background()

	sess := session.New(h.store)
	require.NoError(t, sess.Init(ctx))
	log := logger.Nop()
	nav := cli.NewNavigator(h.errOut)
	notifier := notify.NewWriterNotifier(h.out, log)
	client := api.NewClient(fakeapi.BaseURL, sess,
		api.WithHTTPClient(h.backend.HTTPClient()),
		api.WithNotifier(notifier),
		api.WithNavigator(nav),
	)
	shops := usecase.NewShopUseCase(client, notifier)
	employees := usecase.NewEmployeeUseCase(client, notifier)
	items := usecase.NewItemUseCase(client, notifier)

	app := cli.New(cli.Deps{
		Auth:      usecase.NewAuthUseCase(client, sess, notifier, nav, log),
		Shops:     shops,
		Employees: employees,
		Items:     items,
		Users:     usecase.NewUserUseCase(client, notifier),
		Dashboard: usecase.NewDashboardUseCase(shops, employees, items),
		Reports:   usecase.NewReportUseCase(shops, items, pdf.NewInventoryReport()),
		Navigator: nav,
		Out:       h.out,
		Err:       h.errOut,
		Log:       log,
	})
	return app.Run(ctx, args)
}

func (h *harness) login(t *testing.T, email string) {
	t.Helper()
	require.Equal(t, cli.ExitOK, h.run(t, "login", "-email", email, "-password", fakeapi.Password), h.errOut.String())
	h.backend.ResetRequests()
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_LoginPersisteSesion(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.OwnerEmail)

	assert.Equal(t, cli.ExitOK, h.run(t, "whoami"))
	assert.Contains(t, h.out.String(), "Shop Owner <owner@crm.kz>")
	assert.Contains(t, h.out.String(), "rol: owner")
	assert.Empty(t, h.backend.Requests(), "el usuario sale de la sesión persistida")
}

func TestRun_SinSesionAccesoDenegado(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, cli.ExitDenied, h.run(t, "shops", "list"))
	assert.Contains(t, h.out.String(), cli.MsgAccessDenied)
	assert.Empty(t, h.backend.Requests())
}

func TestRun_PermisoFaltanteNoLlamaALaAPI(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.UserEmail)

	assert.Equal(t, cli.ExitDenied, h.run(t, "shops", "delete", "-id", "1"))
	assert.Contains(t, h.out.String(), "acceso denegado")
	assert.Contains(t, h.out.String(), "delete:shop")
	assert.Empty(t, h.backend.Requests())

	assert.Equal(t, cli.ExitDenied, h.run(t, "users", "list"))
}

func TestRun_OwnerListaSusTiendas(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.OwnerEmail)

	assert.Equal(t, cli.ExitOK, h.run(t, "shops", "list"))
	assert.Contains(t, h.out.String(), "Downtown Boutique")
	assert.Contains(t, h.out.String(), "Suburban Outlet")
	assert.Equal(t, 1, h.backend.Count(http.MethodGet, "/owner/shops"))
}

func TestRun_AdminEliminaTienda(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.AdminEmail)

	assert.Equal(t, cli.ExitOK, h.run(t, "shops", "delete", "-id", "2"))
	assert.Equal(t, 1, h.backend.Count(http.MethodDelete, "/admin/shops/2"))
	assert.Contains(t, h.out.String(), "✔")
	assert.Contains(t, h.out.String(), "Tienda eliminada correctamente")
}

func TestRun_ItemConPrecioNegativo(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.OwnerEmail)

	code := h.run(t, "items", "add", "-shop", "1", "-name", "Gorra", "-brand", "NewEra",
		"-category", "accesorios", "-size", "U", "-purchase", "-5", "-sale", "20")
	assert.Equal(t, cli.ExitError, code)
	assert.Contains(t, h.errOut.String(), "datos inválidos")
	assert.Contains(t, h.errOut.String(), "purchase_price")
	assert.Empty(t, h.backend.Requests())
}

func TestRun_ActualizarItemParcial(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.OwnerEmail)

	assert.Equal(t, cli.ExitOK, h.run(t, "items", "update", "-shop", "1", "-id", "1", "-sale", "95.5"))
	reqs := h.backend.Requests()
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"sale_price":95.5}`, string(reqs[0].Body))
}

func TestRun_DashboardFormateaNumeros(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.AdminEmail)

	assert.Equal(t, cli.ExitOK, h.run(t, "dashboard"))
	assert.Contains(t, h.out.String(), "Tiendas: 2")
	assert.Contains(t, h.out.String(), "Valor del inventario: $229,98")
}

func TestRun_ReporteEscribePDF(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.OwnerEmail)
	out := filepath.Join(t.TempDir(), "inventario.pdf")

	assert.Equal(t, cli.ExitOK, h.run(t, "items", "report", "-shop", "1", "-out", out))
	doc, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRun_SesionExpiradaPideLogin(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.OwnerEmail)
	require.NoError(t, h.store.Set(context.Background(), session.KeyToken, "vencido"))

	assert.Equal(t, cli.ExitError, h.run(t, "items", "list", "-shop", "1"))
	assert.Contains(t, h.errOut.String(), "Inicie sesión con")
	_, ok, _ := h.store.Get(context.Background(), session.KeyUser)
	assert.False(t, ok)
}

func TestRun_LogoutEUsoIncorrecto(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.OwnerEmail)

	assert.Equal(t, cli.ExitOK, h.run(t, "logout"))
	_, ok, _ := h.store.Get(context.Background(), session.KeyToken)
	assert.False(t, ok)

	assert.Equal(t, cli.ExitUsage, h.run(t))
	assert.Equal(t, cli.ExitUsage, h.run(t, "shops", "explode"))
	assert.Equal(t, cli.ExitUsage, h.run(t, "login", "-desconocido"))
}

func TestRun_PermisosDelRol(t *testing.T) {
	h := newHarness(t)
	h.login(t, fakeapi.UserEmail)

	assert.Equal(t, cli.ExitOK, h.run(t, "permissions"))
	assert.Contains(t, h.out.String(), "rol user: 2 permisos")
	assert.Contains(t, h.out.String(), "view:inventory")
}
