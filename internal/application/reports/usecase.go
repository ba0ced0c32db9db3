package reports

import (
	"time"

	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// DateLayout formato de fecha calendario aceptado en los reportes.
const DateLayout = "2006-01-02"

// UseCase reportes de solo lectura sobre el libro de ventas: resumen diario,
// historial por rango y productos más vendidos.
type UseCase struct {
	saleRepo   repository.SaleRepository
	reportRepo repository.ReportRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(saleRepo repository.SaleRepository, reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{saleRepo: saleRepo, reportRepo: reportRepo}
}

// DailySummary total vendido y número de ventas de un día calendario.
func (uc *UseCase) DailySummary(dateStr string) (*dto.DailySummaryResponse, error) {
	day, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	summary, err := uc.reportRepo.DailySummary(day)
	if err != nil {
		return nil, err
	}
	return &dto.DailySummaryResponse{
		Date:             dateStr,
		TotalSalesAmount: summary.TotalAmount,
		NumberOfSales:    summary.SaleCount,
	}, nil
}

// History lista las ventas del rango [start, end], inclusivo en ambos
// extremos a granularidad de día.
func (uc *UseCase) History(startStr, endStr string) (*dto.SalesHistoryResponse, error) {
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesHistoryResponse{
		StartDate: startStr,
		EndDate:   endStr,
		Sales:     make([]dto.SaleResponse, 0, len(sales)),
	}
	for _, s := range sales {
		out.Sales = append(out.Sales, dto.SaleResponse{
			SaleID:        s.ID,
			TotalAmount:   s.TotalAmount,
			PaymentMethod: s.PaymentMethod,
			SaleDate:      s.Date.Format("2006-01-02 15:04:05"),
			CashierID:     s.CashierID,
		})
	}
	return out, nil
}

// TopProducts productos con más unidades vendidas en el rango. Limit por
// defecto 10, tope 100.
func (uc *UseCase) TopProducts(startStr, endStr string, limit int) ([]dto.TopProductResponse, error) {
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	rows, err := uc.reportRepo.TopProducts(start, end, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductResponse{
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
		})
	}
	return out, nil
}

// parseRange valida las fechas y expande el rango a día completo.
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout, startStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end, err := time.ParseInLocation(DateLayout, endStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return DayRange(start, end)
}

// DayRange devuelve [inicio del día start, fin del día end]: un rango de
// fechas cubre desde las 00:00:00 del primer día hasta el último instante
// del día final.
func DayRange(start, end time.Time) (time.Time, time.Time, error) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).
		AddDate(0, 0, 1).Add(-time.Nanosecond)
	return from, to, nil
}
