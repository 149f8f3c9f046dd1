package dto

import "time"

// RegisterCompanyRequest alta de un estudio contable junto a su primer usuario administrador.
type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name"`
	CompanyRUT  string `json:"company_rut"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name,omitempty"`
}

// RegisterRequest entrada para agregar un usuario al estudio del admin autenticado.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"` // admin | contador | asistente; por defecto asistente
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyResponse estudio contable.
type CompanyResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RUT    string `json:"rut"`
	Status string `json:"status"`
}

// RegisterCompanyResponse estudio creado, su admin y un token listo para usar.
type RegisterCompanyResponse struct {
	Company CompanyResponse `json:"company"`
	User    UserResponse    `json:"user"`
	Token   string          `json:"token"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
