package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError identifica la primera línea del carrito que no se
// pudo satisfacer: producto, cantidad pedida y stock disponible al momento
// de la validación. Envuelve ErrInsufficientStock para errors.Is.
type InsufficientStockError struct {
	ProductID string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: solicitado %d, disponible %d",
		e.ProductID, e.Requested, e.Available)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ProductNotFoundError identifica el producto faltante durante un checkout.
// Envuelve ErrNotFound para errors.Is.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %s no encontrado", e.ProductID)
}

// Unwrap permite errors.Is(err, ErrNotFound).
func (e *ProductNotFoundError) Unwrap() error { return ErrNotFound }
