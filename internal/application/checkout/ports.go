package checkout

import (
	"context"

	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a
// ella. Si fn retorna error la transacción se revierte completa; si retorna
// nil se confirma. Ninguna escritura intermedia es visible fuera de fn.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
	) error) error
}
