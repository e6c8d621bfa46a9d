package dto

import "github.com/jhoicas/shop-crm/internal/domain/entity"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token y, según el backend, el usuario embebido.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user,omitempty"`
}

// RegisterRequest entrada para registro. Role vacío usa "user".
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2"`
	LastName  string `json:"last_name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=admin owner user"`
}

// CreateUserRequest entrada para crear un usuario (admin).
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2"`
	LastName  string `json:"last_name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role" validate:"required,oneof=admin owner user"`
}

// UpdateUserRequest actualización parcial: sólo viajan los campos no nil.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=2"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=2"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=admin owner user"`
}

// UserResponse usuario tal como lo devuelve el backend.
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// ToEntity convierte al modelo del cliente. Un rol desconocido se conserva
// tal cual; no otorga permisos.
func (r UserResponse) ToEntity() entity.User {
	return entity.User{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Role:      entity.Role(r.Role),
	}
}

// FromUser cuerpo snake_case de un usuario del cliente.
func FromUser(u entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}
