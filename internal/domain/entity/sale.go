package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados. Son etiquetas: no hay integración con pasarelas.
const (
	PaymentCash  = "cash"
	PaymentMpesa = "mpesa"
	PaymentCard  = "card"
)

// ValidPaymentMethod indica si la etiqueta de pago es una de las conocidas.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentMpesa, PaymentCard:
		return true
	}
	return false
}

// Sale es la cabecera de una venta completada. Inmutable una vez confirmada;
// solo la crea un checkout exitoso. El ID lo asigna la base de datos
// (BIGSERIAL) y es estrictamente creciente.
type Sale struct {
	ID            int64
	TotalAmount   decimal.Decimal // Σ subtotales de sus líneas, calculado en el servidor
	PaymentMethod string
	Date          time.Time
	CashierID     string
}
