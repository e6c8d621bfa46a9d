package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/application/ports"
	"github.com/jhoicas/shop-crm/internal/application/validation"
	"github.com/jhoicas/shop-crm/internal/domain"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
)

// ShopUseCase operaciones sobre tiendas. Listar todas, crear y eliminar son
// rutas de admin; el resto son rutas de owner.
type ShopUseCase struct {
	api      ports.APIClient
	notifier ports.Notifier
}

// NewShopUseCase construye el caso de uso de tiendas.
func NewShopUseCase(client ports.APIClient, notifier ports.Notifier) *ShopUseCase {
	return &ShopUseCase{api: client, notifier: notifierOrNop(notifier)}
}

// ListAll todas las tiendas (admin).
func (uc *ShopUseCase) ListAll(ctx context.Context) ([]entity.Shop, error) {
	return uc.list(ctx, "/admin/shops")
}

// ListByOwner tiendas del usuario autenticado (owner).
func (uc *ShopUseCase) ListByOwner(ctx context.Context) ([]entity.Shop, error) {
	return uc.list(ctx, "/owner/shops")
}

func (uc *ShopUseCase) list(ctx context.Context, path string) ([]entity.Shop, error) {
	raw, err := uc.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	rows, err := decodeList[dto.ShopResponse](raw)
	if err != nil {
		return nil, err
	}
	shops := make([]entity.Shop, 0, len(rows))
	for _, r := range rows {
		shops = append(shops, r.ToEntity())
	}
	return shops, nil
}

// GetByID una tienda. Devuelve domain.ErrNotFound si no existe.
func (uc *ShopUseCase) GetByID(ctx context.Context, id int64) (*entity.Shop, error) {
	if err := requireID("shop_id", id); err != nil {
		return nil, err
	}
	raw, err := uc.api.Get(ctx, fmt.Sprintf("/owner/shops/%d", id))
	if err != nil {
		return nil, err
	}
	resp, err := decodeOne[dto.ShopResponse](raw)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, domain.ErrNotFound
	}
	shop := resp.ToEntity()
	return &shop, nil
}

// Create crea una tienda (admin). La tienda devuelta es nil si el backend no
// la devuelve.
func (uc *ShopUseCase) Create(ctx context.Context, in dto.CreateShopRequest) (*entity.Shop, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	raw, err := mutation(uc.notifier, "Tienda creada correctamente", "No se pudo crear la tienda", func() (json.RawMessage, error) {
		return uc.api.Post(ctx, "/admin/shops", in)
	})
	if err != nil {
		return nil, err
	}
	return decodeShop(raw)
}

// Update modifica sólo los campos presentes en in.
func (uc *ShopUseCase) Update(ctx context.Context, id int64, in dto.UpdateShopRequest) (*entity.Shop, error) {
	if err := requireID("shop_id", id); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	raw, err := mutation(uc.notifier, "Tienda actualizada correctamente", "No se pudo actualizar la tienda", func() (json.RawMessage, error) {
		return uc.api.Put(ctx, fmt.Sprintf("/owner/shops/%d", id), in)
	})
	if err != nil {
		return nil, err
	}
	return decodeShop(raw)
}

// Delete elimina una tienda (admin).
func (uc *ShopUseCase) Delete(ctx context.Context, id int64) error {
	if err := requireID("shop_id", id); err != nil {
		return err
	}
	_, err := mutation(uc.notifier, "Tienda eliminada correctamente", "No se pudo eliminar la tienda", func() (json.RawMessage, error) {
		return uc.api.Delete(ctx, fmt.Sprintf("/admin/shops/%d", id))
	})
	return err
}

func decodeShop(raw json.RawMessage) (*entity.Shop, error) {
	resp, err := decodeOne[dto.ShopResponse](raw)
	if err != nil || resp == nil {
		return nil, err
	}
	shop := resp.ToEntity()
	return &shop, nil
}
