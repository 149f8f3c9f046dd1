package dto

import "time"

// CreateClientRequest body para POST /api/clientes.
type CreateClientRequest struct {
	RUT         string `json:"rut"`
	RazonSocial string `json:"razon_social"`
	Giro        string `json:"giro,omitempty"`
	Regimen     string `json:"regimen,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// UpdateClientRequest body para PUT /api/clientes/:id. Los campos nil no se modifican.
type UpdateClientRequest struct {
	RUT         *string `json:"rut,omitempty"`
	RazonSocial *string `json:"razon_social,omitempty"`
	Giro        *string `json:"giro,omitempty"`
	Regimen     *string `json:"regimen,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// ClientListRequest parámetros de GET /api/clientes.
type ClientListRequest struct {
	PageRequest
	Search     string `query:"q"`
	OnlyActive bool   `query:"activos"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID          string    `json:"id"`
	RUT         string    `json:"rut"`
	RazonSocial string    `json:"razon_social"`
	Giro        string    `json:"giro,omitempty"`
	Regimen     string    `json:"regimen,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
