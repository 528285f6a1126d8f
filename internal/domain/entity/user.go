package entity

import "time"

// User operador que firma los movimientos del inventario. El JWT que recibe al iniciar sesión
// lleva su Username, que termina en performed_by.
type User struct {
	ID           int64
	Username     string
	Name         string
	PasswordHash string // bcrypt
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
