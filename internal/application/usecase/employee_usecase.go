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

// EmployeeUseCase empleados de una tienda. El backend no expone
// actualización de empleados.
type EmployeeUseCase struct {
	api      ports.APIClient
	notifier ports.Notifier
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(client ports.APIClient, notifier ports.Notifier) *EmployeeUseCase {
	return &EmployeeUseCase{api: client, notifier: notifierOrNop(notifier)}
}

// ListByShop empleados de shopID.
func (uc *EmployeeUseCase) ListByShop(ctx context.Context, shopID int64) ([]entity.Employee, error) {
	if err := requireID("shop_id", shopID); err != nil {
		return nil, err
	}
	raw, err := uc.api.Get(ctx, employeesPath(shopID))
	if err != nil {
		return nil, err
	}
	rows, err := decodeList[dto.EmployeeResponse](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Employee, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEntity(shopID))
	}
	return out, nil
}

// Create agrega un empleado a shopID.
func (uc *EmployeeUseCase) Create(ctx context.Context, shopID int64, in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	if err := requireID("shop_id", shopID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	raw, err := mutation(uc.notifier, "Empleado agregado correctamente", "No se pudo agregar el empleado", func() (json.RawMessage, error) {
		return uc.api.Post(ctx, employeesPath(shopID), in)
	})
	if err != nil {
		return nil, err
	}
	resp, err := decodeOne[dto.EmployeeResponse](raw)
	if err != nil || resp == nil {
		return nil, err
	}
	emp := resp.ToEntity(shopID)
	return &emp, nil
}

// Delete quita un empleado de shopID.
func (uc *EmployeeUseCase) Delete(ctx context.Context, shopID, employeeID int64) error {
	if err := requireID("shop_id", shopID); err != nil {
		return err
	}
	if err := requireID("employee_id", employeeID); err != nil {
		return err
	}
	_, err := mutation(uc.notifier, "Empleado eliminado correctamente", "No se pudo eliminar el empleado", func() (json.RawMessage, error) {
		return uc.api.Delete(ctx, fmt.Sprintf("%s/%d", employeesPath(shopID), employeeID))
	})
	return err
}

func employeesPath(shopID int64) string {
	return fmt.Sprintf("/owner/shops/%d/employees", shopID)
}
