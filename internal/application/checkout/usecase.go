package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// UseCase ejecuta el checkout: valida stock línea por línea, descuenta con
// decremento condicional y escribe cabecera + líneas de venta, todo dentro
// de una sola transacción. O se confirma todo o no cambia nada.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// Checkout procesa el carrito en el orden recibido y produce exactamente uno
// de dos resultados: confirmación total (stock descontado, una cabecera y una
// línea por ítem, visibles juntos) o aborto sin ningún efecto. La primera
// línea con producto faltante o stock insuficiente aborta el lote completo;
// no hay cumplimiento parcial.
func (uc *UseCase) Checkout(ctx context.Context, cashierID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if cashierID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.TenderedAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.CheckoutResponse

	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
	) error {
		total := decimal.Zero
		items := make([]*entity.SaleItem, 0, len(in.Lines))

		for _, line := range in.Lines {
			product, err := products.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ProductNotFoundError{ProductID: line.ProductID}
			}
			if product.Stock < line.Quantity {
				return &domain.InsufficientStockError{
					ProductID: product.ID,
					Requested: line.Quantity,
					Available: product.Stock,
				}
			}

			// Decremento condicional: UPDATE ... WHERE stock >= qty. Si otra
			// transacción ganó la carrera entre la lectura y esta escritura,
			// no afecta filas y el checkout aborta sin efectos.
			applied, err := products.DecrementStock(product.ID, line.Quantity)
			if err != nil {
				return err
			}
			if !applied {
				available := product.Stock
				if current, err := products.GetByID(product.ID); err == nil && current != nil {
					available = current.Stock
				}
				return &domain.InsufficientStockError{
					ProductID: product.ID,
					Requested: line.Quantity,
					Available: available,
				}
			}

			// Precio y nombre se congelan al momento de la venta; el subtotal
			// sale siempre del precio vigente en catálogo, nunca del cliente.
			subtotal := product.Price.Mul(decimal.NewFromInt(line.Quantity))
			total = total.Add(subtotal)
			items = append(items, &entity.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				PriceAtSale: product.Price,
				Quantity:    line.Quantity,
				Subtotal:    subtotal,
			})
		}

		if in.TenderedAmount.LessThan(total) {
			return domain.ErrInvalidInput
		}

		saleID, err := sales.CreateSale(&entity.Sale{
			TotalAmount:   total,
			PaymentMethod: in.PaymentMethod,
			Date:          now,
			CashierID:     cashierID,
		})
		if err != nil {
			return err
		}
		for _, item := range items {
			item.SaleID = saleID
			if err := sales.CreateItem(item); err != nil {
				return err
			}
		}

		resp = &dto.CheckoutResponse{
			SaleID:         saleID,
			TotalAmount:    total,
			PaymentMethod:  in.PaymentMethod,
			TenderedAmount: in.TenderedAmount,
			ChangeDue:      in.TenderedAmount.Sub(total),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
