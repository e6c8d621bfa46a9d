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

// ItemUseCase inventario de una tienda.
type ItemUseCase struct {
	api      ports.APIClient
	notifier ports.Notifier
}

// NewItemUseCase construye el caso de uso de ítems.
func NewItemUseCase(client ports.APIClient, notifier ports.Notifier) *ItemUseCase {
	return &ItemUseCase{api: client, notifier: notifierOrNop(notifier)}
}

// ListByShop ítems de shopID. Los ítems sin foto reciben el placeholder.
func (uc *ItemUseCase) ListByShop(ctx context.Context, shopID int64) ([]entity.Item, error) {
	if err := requireID("shop_id", shopID); err != nil {
		return nil, err
	}
	raw, err := uc.api.Get(ctx, itemsPath(shopID))
	if err != nil {
		return nil, err
	}
	rows, err := decodeList[dto.ItemResponse](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEntity(shopID))
	}
	return out, nil
}

// Create agrega un ítem a shopID. Precios > 0.
func (uc *ItemUseCase) Create(ctx context.Context, shopID int64, in dto.CreateItemRequest) (*entity.Item, error) {
	if err := requireID("shop_id", shopID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	raw, err := mutation(uc.notifier, "Ítem agregado correctamente", "No se pudo agregar el ítem", func() (json.RawMessage, error) {
		return uc.api.Post(ctx, itemsPath(shopID), in)
	})
	if err != nil {
		return nil, err
	}
	return decodeItem(raw, shopID)
}

// Update modifica sólo los campos presentes en in.
func (uc *ItemUseCase) Update(ctx context.Context, shopID, itemID int64, in dto.UpdateItemRequest) (*entity.Item, error) {
	if err := requireID("shop_id", shopID); err != nil {
		return nil, err
	}
	if err := requireID("item_id", itemID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	raw, err := mutation(uc.notifier, "Ítem actualizado correctamente", "No se pudo actualizar el ítem", func() (json.RawMessage, error) {
		return uc.api.Put(ctx, fmt.Sprintf("%s/%d", itemsPath(shopID), itemID), in)
	})
	if err != nil {
		return nil, err
	}
	return decodeItem(raw, shopID)
}

// Delete elimina un ítem de shopID.
func (uc *ItemUseCase) Delete(ctx context.Context, shopID, itemID int64) error {
	if err := requireID("shop_id", shopID); err != nil {
		return err
	}
	if err := requireID("item_id", itemID); err != nil {
		return err
	}
	_, err := mutation(uc.notifier, "Ítem eliminado correctamente", "No se pudo eliminar el ítem", func() (json.RawMessage, error) {
		return uc.api.Delete(ctx, fmt.Sprintf("%s/%d", itemsPath(shopID), itemID))
	})
	return err
}

func itemsPath(shopID int64) string {
	return fmt.Sprintf("/owner/shops/%d/items", shopID)
}

func decodeItem(raw json.RawMessage, shopID int64) (*entity.Item, error) {
	resp, err := decodeOne[dto.ItemResponse](raw)
	if err != nil || resp == nil {
		return nil, err
	}
	it := resp.ToEntity(shopID)
	return &it, nil
}
