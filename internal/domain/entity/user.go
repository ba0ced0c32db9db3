package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User representa un usuario del sistema (admin o cajero).
type User struct {
	ID           string
	Username     string
	PasswordHash string // hash bcrypt, nunca en claro después de persistir
	Role         string // admin, cashier
	CreatedAt    time.Time
}
