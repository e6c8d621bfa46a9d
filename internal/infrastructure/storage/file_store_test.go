package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-crm/internal/application/session"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	"github.com/jhoicas/shop-crm/internal/infrastructure/storage"
)

func TestFileStore_GetSinArchivo(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "no", "existe.json"))

	v, ok, err := store.Get(context.Background(), session.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFileStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shopcrm", "session.json")
	store := storage.NewFileStore(path)

	require.NoError(t, store.Set(ctx, session.KeyToken, "abc"))
	require.NoError(t, store.Set(ctx, session.KeyUser, `{"id":1}`))

	// otra instancia lee lo mismo desde disco
	reopened := storage.NewFileStore(path)
	v, ok, err := reopened.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, store.Delete(ctx, session.KeyToken, session.KeyUser))
	_, ok, err = reopened.Get(ctx, session.KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestFileStore_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{roto"), 0o600))

	_, _, err := storage.NewFileStore(path).Get(context.Background(), session.KeyToken)
	assert.Error(t, err)
}

func TestFileStore_ComoBackendDeSession(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	s := session.New(storage.NewFileStore(path))
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.SetToken(ctx, "abc"))
	require.NoError(t, s.SetUser(ctx, entity.User{ID: 2, Email: "owner@crm.kz", Role: entity.RoleOwner}))

	// "recarga de página": nueva sesión sobre el mismo archivo
	again := session.New(storage.NewFileStore(path))
	require.NoError(t, again.Init(ctx))
	assert.Equal(t, "abc", again.Token())
	require.NotNil(t, again.User())
	assert.Equal(t, entity.RoleOwner, again.User().Role)
}
