package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre ventas para reportes.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// DailySummary total vendido y número de ventas de un día calendario.
// Usa COALESCE para devolver cero en días sin ventas.
func (r *ReportRepo) DailySummary(day time.Time) (*repository.DailySummaryResult, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1).Add(-time.Nanosecond)

	const query = `
	SELECT
	    COALESCE(SUM(total_amount), 0) AS total_amount,
	    COUNT(sale_id)                 AS sale_count
	FROM sales
	WHERE sale_date BETWEEN $1 AND $2`

	var out repository.DailySummaryResult
	err := r.pool.QueryRow(context.Background(), query, from, to).
		Scan(&out.TotalAmount, &out.SaleCount)
	if err != nil {
		return nil, fmt.Errorf("reports.DailySummary: %w", err)
	}
	return &out, nil
}

// TopProducts los `limit` productos con más unidades vendidas en el período,
// agrupados por el nombre congelado en la línea de venta.
func (r *ReportRepo) TopProducts(start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    si.product_name       AS product_name,
	    SUM(si.quantity)      AS units_sold
	FROM sale_items si
	JOIN sales s ON s.sale_id = si.sale_id
	WHERE s.sale_date BETWEEN $1 AND $2
	GROUP BY si.product_name
	ORDER BY units_sold DESC
	LIMIT $3`

	rows, err := r.pool.Query(context.Background(), query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductName, &row.UnitsSold); err != nil {
			return nil, fmt.Errorf("reports.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
