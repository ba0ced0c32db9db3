package dto

import "github.com/shopspring/decimal"

// CartLine una línea (producto, cantidad) del carrito. Las líneas se procesan
// en el orden recibido; la primera que falle aborta todo el checkout.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CheckoutRequest entrada del checkout. El total lo calcula siempre el
// servidor con los precios vigentes del catálogo; ningún total del cliente
// se usa como monto autoritativo.
type CheckoutRequest struct {
	PaymentMethod  string          `json:"payment_method"`
	Lines          []CartLine      `json:"lines"`
	TenderedAmount decimal.Decimal `json:"tendered_amount"`
}

// CheckoutResponse salida de un checkout exitoso.
type CheckoutResponse struct {
	SaleID         int64           `json:"sale_id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentMethod  string          `json:"payment_method"`
	TenderedAmount decimal.Decimal `json:"tendered_amount"`
	ChangeDue      decimal.Decimal `json:"change_due"`
}

// InsufficientStockDetail detalle de la línea que abortó el checkout.
type InsufficientStockDetail struct {
	ProductID string `json:"product_id"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
}
