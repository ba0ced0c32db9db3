package repository

import "github.com/tu-usuario/punto-venta/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// GetByUsername y GetByID retornan (nil, nil) si el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Count() (int64, error)
}
