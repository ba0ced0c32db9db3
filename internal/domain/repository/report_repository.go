package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummaryResult totales de un día calendario.
type DailySummaryResult struct {
	TotalAmount decimal.Decimal
	SaleCount   int64
}

// TopProductResult unidades vendidas por producto en un período.
type TopProductResult struct {
	ProductName string
	UnitsSold   int64
}

// ReportRepository consultas de solo lectura sobre el libro de ventas.
// Los rangos de fechas son inclusivos en ambos extremos a granularidad de día.
type ReportRepository interface {
	DailySummary(day time.Time) (*DailySummaryResult, error)
	TopProducts(start, end time.Time, limit int) ([]TopProductResult, error)
}
