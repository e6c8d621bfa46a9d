package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/application/ports"
	"github.com/jhoicas/shop-crm/internal/application/validation"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
)

// UserUseCase administración de usuarios (rutas de admin).
type UserUseCase struct {
	api      ports.APIClient
	notifier ports.Notifier
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(client ports.APIClient, notifier ports.Notifier) *UserUseCase {
	return &UserUseCase{api: client, notifier: notifierOrNop(notifier)}
}

// List todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]entity.User, error) {
	raw, err := uc.api.Get(ctx, "/admin/users")
	if err != nil {
		return nil, err
	}
	rows, err := decodeList[dto.UserResponse](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEntity())
	}
	return out, nil
}

// Create crea un usuario con rol admin, owner o user.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	raw, err := mutation(uc.notifier, "Usuario creado correctamente", "No se pudo crear el usuario", func() (json.RawMessage, error) {
		return uc.api.Post(ctx, "/admin/users", in)
	})
	if err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

// Update modifica sólo los campos presentes en in.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*entity.User, error) {
	if err := requireID("user_id", id); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	raw, err := mutation(uc.notifier, "Usuario actualizado correctamente", "No se pudo actualizar el usuario", func() (json.RawMessage, error) {
		return uc.api.Put(ctx, fmt.Sprintf("/admin/users/%d", id), in)
	})
	if err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	if err := requireID("user_id", id); err != nil {
		return err
	}
	_, err := mutation(uc.notifier, "Usuario eliminado correctamente", "No se pudo eliminar el usuario", func() (json.RawMessage, error) {
		return uc.api.Delete(ctx, fmt.Sprintf("/admin/users/%d", id))
	})
	return err
}

func decodeUser(raw json.RawMessage) (*entity.User, error) {
	resp, err := decodeOne[dto.UserResponse](raw)
	if err != nil || resp == nil {
		return nil, err
	}
	u := resp.ToEntity()
	return &u, nil
}
