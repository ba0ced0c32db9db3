package usecase

import (
	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// SaleUseCase lecturas del libro de ventas: cabecera y detalle.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// GetByID obtiene la cabecera de una venta. Retorna ErrNotFound si no existe.
func (uc *SaleUseCase) GetByID(saleID int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSaleResponse(sale)
	return &resp, nil
}

// Detail obtiene la venta con todas sus líneas (nombre y precio congelados).
func (uc *SaleUseCase) Detail(saleID int64) (*dto.SaleDetailResponse, error) {
	sale, err := uc.repo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleDetailResponse{
		SaleResponse: toSaleResponse(sale),
		Items:        make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			PriceAtSale: item.PriceAtSale,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		SaleID:        s.ID,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		SaleDate:      s.Date.Format("2006-01-02 15:04:05"),
		CashierID:     s.CashierID,
	}
}
