package repository

import (
	"time"

	"github.com/tu-usuario/punto-venta/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
// CreateSale y CreateItem son solo-escritura dentro de la transacción del
// checkout y nunca confirman de forma independiente.
type SaleRepository interface {
	// CreateSale inserta la cabecera y devuelve el sale_id asignado (creciente).
	CreateSale(sale *entity.Sale) (int64, error)
	CreateItem(item *entity.SaleItem) error
	// GetByID retorna (nil, nil) si la venta no existe.
	GetByID(saleID int64) (*entity.Sale, error)
	GetItemsBySaleID(saleID int64) ([]*entity.SaleItem, error)
	// ListByDateRange lista ventas con sale_date dentro de [start, end],
	// ordenadas de más reciente a más antigua.
	ListByDateRange(start, end time.Time) ([]*entity.Sale, error)
}
