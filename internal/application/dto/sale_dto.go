package dto

import "github.com/shopspring/decimal"

// SaleResponse cabecera de una venta.
type SaleResponse struct {
	SaleID        int64           `json:"sale_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	SaleDate      string          `json:"sale_date"`
	CashierID     string          `json:"cashier_id"`
}

// SaleItemResponse línea de una venta con precio y nombre congelados.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Quantity    int64           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleDetailResponse venta con sus líneas.
type SaleDetailResponse struct {
	SaleResponse
	Items []SaleItemResponse `json:"items"`
}
