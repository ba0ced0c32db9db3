package dto

import "github.com/shopspring/decimal"

// DailySummaryResponse total vendido y número de ventas de un día.
type DailySummaryResponse struct {
	Date             string          `json:"date"`
	TotalSalesAmount decimal.Decimal `json:"total_sales_amount"`
	NumberOfSales    int64           `json:"number_of_sales"`
}

// SalesHistoryResponse ventas de un rango de fechas.
type SalesHistoryResponse struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Sales     []SaleResponse `json:"sales"`
}

// TopProductResponse unidades vendidas de un producto.
type TopProductResponse struct {
	ProductName string `json:"product_name"`
	UnitsSold   int64  `json:"units_sold"`
}
