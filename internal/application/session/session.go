// Package session mantiene el token bearer y el usuario cacheado del cliente.
//
// El estado vive en un objeto Session que se pasa de forma explícita a la capa
// de API. Init lo hidrata desde el Store persistente y Clear lo destruye; cada
// escritura se replica al Store para sobrevivir entre ejecuciones.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/shop-crm/internal/domain/entity"
	"github.com/jhoicas/shop-crm/pkg/jwt"
)

// Claves fijas en el almacenamiento persistente. Se limpian siempre juntas.
const (
	KeyToken = "auth_token"
	KeyUser  = "user"
)

// Store almacenamiento persistente clave/valor del lado del cliente.
// Get devuelve ok=false si la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Session estado de autenticación del proceso. Seguro para uso concurrente;
// entre login, logout y 401 gana la última escritura.
type Session struct {
	store Store
	now   func() time.Time

	mu    sync.RWMutex
	token string
	user  *entity.User
}

// New construye la sesión sobre store. Hay que llamar a Init antes de usarla.
func New(store Store) *Session {
	return &Session{store: store, now: time.Now}
}

// Init hidrata la sesión desde el Store. Un JWT ya vencido se descarta junto
// con el usuario; un usuario cacheado ilegible se descarta solo.
func (s *Session) Init(ctx context.Context) error {
	token, hasToken, err := s.store.Get(ctx, KeyToken)
	if err != nil {
		return fmt.Errorf("session: leer token: %w", err)
	}
	rawUser, hasUser, err := s.store.Get(ctx, KeyUser)
	if err != nil {
		return fmt.Errorf("session: leer usuario: %w", err)
	}

	if hasToken && jwt.Expired(token, s.now()) {
		return s.Clear(ctx)
	}

	var user *entity.User
	if hasUser && rawUser != "" {
		var u entity.User
		if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
			if err := s.store.Delete(ctx, KeyUser); err != nil {
				return fmt.Errorf("session: descartar usuario corrupto: %w", err)
			}
		} else {
			user = &u
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if hasToken {
		s.token = token
	}
	s.user = user
	return nil
}

// Token devuelve el token bearer o "" si no hay sesión.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User devuelve una copia del usuario cacheado o nil.
func (s *Session) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated indica si hay un token.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// ExpiresAt expiración del token si es un JWT con claim exp.
func (s *Session) ExpiresAt() (time.Time, bool) {
	claims, err := jwt.Inspect(s.Token())
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// SetToken guarda el token en memoria y en el Store.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.store.Set(ctx, KeyToken, token); err != nil {
		return fmt.Errorf("session: guardar token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// SetUser guarda el usuario en memoria y en el Store.
func (s *Session) SetUser(ctx context.Context, user entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: serializar usuario: %w", err)
	}
	if err := s.store.Set(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("session: guardar usuario: %w", err)
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Clear elimina token y usuario, en memoria y en el Store. El estado en memoria
// se limpia aunque falle el Store.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, KeyToken, KeyUser); err != nil {
		return fmt.Errorf("session: limpiar almacenamiento: %w", err)
	}
	return nil
}
