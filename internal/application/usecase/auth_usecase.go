package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/application/ports"
	"github.com/jhoicas/shop-crm/internal/application/session"
	"github.com/jhoicas/shop-crm/internal/application/validation"
	"github.com/jhoicas/shop-crm/internal/domain"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	"github.com/jhoicas/shop-crm/pkg/logger"
)

// AuthUseCase login, registro y sesión del usuario actual.
type AuthUseCase struct {
	api       ports.APIClient
	session   *session.Session
	notifier  ports.Notifier
	navigator ports.Navigator
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth. notifier, navigator y log
// pueden ser nil.
func NewAuthUseCase(client ports.APIClient, sess *session.Session, notifier ports.Notifier, navigator ports.Navigator, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{api: client, session: sess, notifier: notifierOrNop(notifier), navigator: navigator, log: log}
}

// Login autentica, persiste el token y el usuario. Si el backend no embebe el
// usuario se consulta /auth/me; si esa consulta falla se devuelve (nil, nil) y
// el token se conserva, salvo que /auth/me responda 401: el transporte ya
// limpió la sesión completa. 401/409 del login se traducen a
// domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	raw, err := uc.api.Post(ctx, "/auth/login", in)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrConflict) {
			err = fmt.Errorf("%w: %w", domain.ErrInvalidCredentials, err)
		}
		uc.notifier.Notify(ports.Notification{
			Title:   "Error de inicio de sesión",
			Message: failureMessage(err, domain.ErrInvalidCredentials.Error()),
			Variant: ports.VariantError,
		})
		return nil, err
	}

	resp, err := decodeOne[dto.LoginResponse](raw)
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Token == "" {
		return nil, fmt.Errorf("%w: login sin token", domain.ErrInvalidResponse)
	}
	if err := uc.session.SetToken(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("auth: guardar token: %w", err)
	}

	var user entity.User
	if resp.User != nil {
		user = resp.User.ToEntity()
	} else {
		me, err := uc.fetchMe(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("auth: no se pudo obtener el usuario tras el login")
			return nil, nil
		}
		user = *me
	}
	if err := uc.session.SetUser(ctx, user); err != nil {
		return nil, fmt.Errorf("auth: guardar usuario: %w", err)
	}

	uc.notifier.Notify(ports.Notification{
		Title:   "Sesión iniciada",
		Message: fmt.Sprintf("Bienvenido, %s", nonEmpty(user.FirstName, user.Email)),
		Variant: ports.VariantSuccess,
	})
	return &user, nil
}

// Register crea una cuenta. Role vacío usa "user". 409 se traduce a
// domain.ErrEmailAlreadyExists. El usuario creado puede ser nil si el
// backend no lo devuelve.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	if in.Role == "" {
		in.Role = string(entity.RoleUser)
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	raw, err := mutation(uc.notifier, "Cuenta creada correctamente", "No se pudo registrar la cuenta", func() (json.RawMessage, error) {
		return uc.api.Post(ctx, "/auth/register", in)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", domain.ErrEmailAlreadyExists, err)
		}
		return nil, err
	}
	resp, err := decodeOne[dto.UserResponse](raw)
	if err != nil || resp == nil {
		return nil, err
	}
	user := resp.ToEntity()
	return &user, nil
}

// CurrentUser usuario en sesión. Con token pero sin usuario cacheado se
// consulta /auth/me; si falla, la sesión se limpia y se devuelve nil.
func (uc *AuthUseCase) CurrentUser(ctx context.Context) *entity.User {
	if u := uc.session.User(); u != nil {
		return u
	}
	if uc.session.Token() == "" {
		return nil
	}
	me, err := uc.fetchMe(ctx)
	if err != nil {
		uc.log.Debug().Err(err).Msg("auth: token sin usuario válido, se limpia la sesión")
		if cErr := uc.session.Clear(context.WithoutCancel(ctx)); cErr != nil {
			uc.log.Error().Err(cErr).Msg("auth: limpiar sesión")
		}
		return nil
	}
	if err := uc.session.SetUser(ctx, *me); err != nil {
		uc.log.Error().Err(err).Msg("auth: guardar usuario")
	}
	return me
}

// Logout limpia la sesión y fuerza la vista de login.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if err := uc.session.Clear(ctx); err != nil {
		return fmt.Errorf("auth: cerrar sesión: %w", err)
	}
	if uc.navigator != nil {
		uc.navigator.NavigateToLogin()
	}
	uc.notifier.Notify(ports.Notification{
		Title:   "Sesión cerrada",
		Message: "Cerró sesión correctamente",
		Variant: ports.VariantInfo,
	})
	return nil
}

// IsAuthenticated true si hay token en sesión.
func (uc *AuthUseCase) IsAuthenticated() bool {
	return uc.session.Authenticated()
}

func (uc *AuthUseCase) fetchMe(ctx context.Context) (*entity.User, error) {
	raw, err := uc.api.Get(ctx, "/auth/me")
	if err != nil {
		return nil, err
	}
	resp, err := decodeOne[dto.UserResponse](raw)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: /auth/me vacío", domain.ErrInvalidResponse)
	}
	user := resp.ToEntity()
	return &user, nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
