package receipt

import (
	"context"

	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// Renderer genera el comprobante imprimible de una venta.
type Renderer interface {
	RenderReceipt(ctx context.Context, storeName string, sale *entity.Sale, items []*entity.SaleItem) ([]byte, error)
}

// UseCase arma el comprobante PDF de una venta confirmada.
type UseCase struct {
	saleRepo  repository.SaleRepository
	renderer  Renderer
	storeName string
}

// NewUseCase construye el caso de uso de comprobantes.
func NewUseCase(saleRepo repository.SaleRepository, renderer Renderer, storeName string) *UseCase {
	return &UseCase{saleRepo: saleRepo, renderer: renderer, storeName: storeName}
}

// Generate obtiene la venta con sus líneas y la renderiza como PDF.
// Retorna ErrNotFound si la venta no existe.
func (uc *UseCase) Generate(ctx context.Context, saleID int64) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderReceipt(ctx, uc.storeName, sale, items)
}
