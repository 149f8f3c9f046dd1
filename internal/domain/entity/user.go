package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleContador  = "contador"
	RoleAsistente = "asistente"
)

// User representa un usuario del estudio contable (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, contador, asistente
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleContador, RoleAsistente:
		return true
	}
	return false
}
