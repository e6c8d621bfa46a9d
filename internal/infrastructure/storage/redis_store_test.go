package storage_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-crm/internal/application/session"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	"github.com/jhoicas/shop-crm/internal/infrastructure/storage"
)

// newRedis levanta un Redis en proceso y un store con prefix sobre él.
func newRedis(t *testing.T, prefix string) (*miniredis.Miniredis, *storage.RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := storage.NewRedisStoreFromClient(client, prefix)
	t.Cleanup(func() { _ = store.Close() })
	return mr, store
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedis(t, "shopcrm:")

	_, ok, err := store.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, session.KeyToken, "abc"))
	v, ok, err := store.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	// Sin TTL: la sesión vive hasta logout o 401.
	assert.Zero(t, mr.TTL("shopcrm:"+session.KeyToken))
}

func TestRedisStore_GuardaConPrefijo(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedis(t, "tenant-a:")

	require.NoError(t, store.Set(ctx, session.KeyToken, "abc"))

	got, err := mr.Get("tenant-a:" + session.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.False(t, mr.Exists(session.KeyToken), "la clave sin prefijo no se escribe")

	// Otro prefijo sobre el mismo servidor no ve la sesión.
	other := storage.NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "tenant-b:")
	defer other.Close()
	_, ok, err := other.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_DeleteBorraAmbasClaves(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedis(t, "shopcrm:")
	require.NoError(t, store.Set(ctx, session.KeyToken, "abc"))
	require.NoError(t, store.Set(ctx, session.KeyUser, `{"id":1}`))
	require.NoError(t, mr.Set("shopcrm:otra", "x"))

	require.NoError(t, store.Delete(ctx, session.KeyToken, session.KeyUser))

	assert.False(t, mr.Exists("shopcrm:"+session.KeyToken))
	assert.False(t, mr.Exists("shopcrm:"+session.KeyUser))
	assert.True(t, mr.Exists("shopcrm:otra"))
	assert.NoError(t, store.Delete(ctx), "sin claves no hace nada")
}

func TestRedisStore_SesionPersisteEntreProcesos(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedis(t, "shopcrm:")

	first := session.New(store)
	require.NoError(t, first.Init(ctx))
	require.NoError(t, first.SetToken(ctx, "abc"))
	require.NoError(t, first.SetUser(ctx, entity.User{ID: 2, Email: "owner@crm.kz", Role: entity.RoleOwner}))

	second := session.New(store)
	require.NoError(t, second.Init(ctx))
	assert.Equal(t, "abc", second.Token())
	require.NotNil(t, second.User())
	assert.Equal(t, entity.RoleOwner, second.User().Role)

	require.NoError(t, second.Clear(ctx))
	assert.False(t, mr.Exists("shopcrm:"+session.KeyToken))
	assert.False(t, mr.Exists("shopcrm:"+session.KeyUser))
}

func TestRedisStore_ServidorCaidoDevuelveError(t *testing.T) {
	mr, store := newRedis(t, "shopcrm:")
	mr.Close()

	_, _, err := store.Get(context.Background(), session.KeyToken)
	assert.Error(t, err)
	assert.Error(t, store.Set(context.Background(), session.KeyToken, "abc"))
}

func TestNewRedisStore_ConectaPorURL(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := storage.NewRedisStore(context.Background(), "redis://"+mr.Addr()+"/0", "shopcrm:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(context.Background(), session.KeyUser, "u"))
	assert.True(t, mr.Exists("shopcrm:"+session.KeyUser))
}

func TestNewRedisStore_URLInvalida(t *testing.T) {
	_, err := storage.NewRedisStore(context.Background(), "http://no-es-redis", "x:")
	assert.Error(t, err)
}
