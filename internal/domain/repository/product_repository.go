package repository

import "github.com/tu-usuario/punto-venta/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID retorna (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// Search busca por subcadena en id o nombre (case-insensitive), ordenado por nombre.
	Search(query string) ([]*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	// DecrementStock aplica el decremento condicional (UPDATE ... WHERE stock >= qty)
	// y reporta si afectó la fila. No confirma nada por sí mismo: opera sobre el
	// Querier al que está atado (pool o transacción del caller).
	DecrementStock(id string, qty int64) (bool, error)
}
