package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador del libro de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// CreateSale inserta la cabecera y devuelve el sale_id asignado por la
// secuencia (estrictamente creciente). No confirma nada por sí misma.
func (r *SaleRepo) CreateSale(sale *entity.Sale) (int64, error) {
	query := `
		INSERT INTO sales (total_amount, payment_method, sale_date, cashier_id)
		VALUES ($1, $2, $3, $4)
		RETURNING sale_id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		sale.TotalAmount, sale.PaymentMethod, sale.Date, sale.CashierID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	sale.ID = id
	return id, nil
}

// CreateItem inserta una línea de venta con nombre y precio congelados.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, product_id, product_name, price_at_sale, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.SaleID, item.ProductID, item.ProductName, item.PriceAtSale,
		item.Quantity, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta. Retorna (nil, nil) si no existe.
func (r *SaleRepo) GetByID(saleID int64) (*entity.Sale, error) {
	query := `
		SELECT sale_id, total_amount, payment_method, sale_date, cashier_id
		FROM sales WHERE sale_id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, saleID).Scan(
		&s.ID, &s.TotalAmount, &s.PaymentMethod, &s.Date, &s.CashierID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItemsBySaleID lista las líneas de una venta ordenadas por nombre de producto.
func (r *SaleRepo) GetItemsBySaleID(saleID int64) ([]*entity.SaleItem, error) {
	query := `
		SELECT item_id, sale_id, product_id, product_name, price_at_sale, quantity, subtotal
		FROM sale_items WHERE sale_id = $1
		ORDER BY product_name`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.PriceAtSale, &item.Quantity, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// ListByDateRange lista ventas con sale_date dentro de [start, end], de más
// reciente a más antigua.
func (r *SaleRepo) ListByDateRange(start, end time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT sale_id, total_amount, payment_method, sale_date, cashier_id
		FROM sales WHERE sale_date BETWEEN $1 AND $2
		ORDER BY sale_date DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.TotalAmount, &s.PaymentMethod, &s.Date, &s.CashierID); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
