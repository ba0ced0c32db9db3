package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// El ID lo asigna el negocio (ej. "P001") y es inmutable una vez creado.
// Stock es entero y nunca negativo; solo lo muta el alta/edición del catálogo
// y el decremento condicional durante el checkout.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio de venta, siempre > 0
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
