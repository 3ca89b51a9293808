package entity

import "time"

// Roles de usuario. El personal de la instalación (admin, operador) no tiene
// empresa asociada; los usuarios cliente quedan restringidos a su CompanyID.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleCliente  = "cliente"
)

// User usuario del sistema.
type User struct {
	ID           string
	CompanyID    string // vacío = personal de la instalación
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
