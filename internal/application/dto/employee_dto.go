package dto

import "github.com/jhoicas/shop-crm/internal/domain/entity"

// CreateEmployeeRequest entrada para agregar un empleado a una tienda.
// Role es libre (employee, manager...).
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role" validate:"required"`
}

// EmployeeResponse empleado tal como lo devuelve el backend.
type EmployeeResponse struct {
	ID     int64  `json:"id"`
	ShopID int64  `json:"shop_id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ToEntity convierte al modelo del cliente; la tienda es la de la ruta
// consultada, no la que informe el cuerpo.
func (r EmployeeResponse) ToEntity(shopID int64) entity.Employee {
	return entity.Employee{
		ID:     r.ID,
		ShopID: shopID,
		Name:   r.Name,
		Email:  r.Email,
		Role:   r.Role,
	}
}

// FromEmployee cuerpo snake_case de un empleado del cliente.
func FromEmployee(e entity.Employee) EmployeeResponse {
	return EmployeeResponse{ID: e.ID, ShopID: e.ShopID, Name: e.Name, Email: e.Email, Role: e.Role}
}
