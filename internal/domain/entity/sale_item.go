package entity

import "github.com/shopspring/decimal"

// SaleItem es una línea de una venta completada. Nombre y precio son una
// copia congelada al momento de la transacción: editar o borrar el producto
// del catálogo no altera las líneas históricas.
type SaleItem struct {
	ID          int64
	SaleID      int64
	ProductID   string
	ProductName string
	PriceAtSale decimal.Decimal
	Quantity    int64
	Subtotal    decimal.Decimal // PriceAtSale × Quantity
}
