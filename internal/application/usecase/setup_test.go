package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-crm/internal/application/ports"
	"github.com/jhoicas/shop-crm/internal/application/session"
	"github.com/jhoicas/shop-crm/internal/infrastructure/api"
	"github.com/jhoicas/shop-crm/internal/infrastructure/notify"
	"github.com/jhoicas/shop-crm/internal/testutil/fakeapi"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type navigator struct {
	view      string
	redirects int
}

func (n *navigator) CurrentView() string { return n.view }
func (n *navigator) NavigateToLogin()    { n.redirects++; n.view = ports.ViewLogin }

type env struct {
	backend *fakeapi.Backend
	store   *session.MemoryStore
	sess    *session.Session
	notes   *notify.Recorder
	nav     *navigator
	client  *api.Client
}

// newEnv backend falso + sesión en memoria. Con userID > 0 la sesión arranca
// autenticada como ese usuario sembrado.
func newEnv(t *testing.T, userID int64, opts ...fakeapi.Option) *env {
	t.Helper()
	ctx := context.Background()
	b := fakeapi.New(opts...)
	store := session.NewMemoryStore()
	sess := session.New(store)
	require.NoError(t, sess.Init(ctx))

	if userID > 0 {
		require.NoError(t, sess.SetToken(ctx, b.Token(userID)))
		u, ok := b.User(userID)
		require.True(t, ok)
		require.NoError(t, sess.SetUser(ctx, u))
	}

	notes := &notify.Recorder{}
	nav := &navigator{view: "shops"}
	client := api.NewClient(fakeapi.BaseURL, sess,
		api.WithHTTPClient(b.HTTPClient()),
		api.WithNotifier(notes),
		api.WithNavigator(nav),
	)
	return &env{backend: b, store: store, sess: sess, notes: notes, nav: nav, client: client}
}

func (e *env) lastNotification(t *testing.T) ports.Notification {
	t.Helper()
	n, ok := e.notes.Last()
	require.True(t, ok, "se esperaba una notificación")
	return n
}
