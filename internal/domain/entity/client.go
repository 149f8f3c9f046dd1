package entity

import "time"

// Regímenes tributarios que el estudio registra para sus clientes.
const (
	RegimenProPymeGeneral      = "14D3"
	RegimenProPymeTransparente = "14D8"
	RegimenGeneral             = "14A"
	RegimenPersonaNatural      = "PN"
)

// Client representa un contribuyente atendido por el estudio.
type Client struct {
	ID          string
	CompanyID   string
	RUT         string // forma canónica validada con sii.ValidarRUT
	RazonSocial string
	Giro        string
	Regimen     string
	Email       string
	Phone       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidRegimen indica si el régimen es uno de los conocidos (vacío se acepta).
func ValidRegimen(r string) bool {
	switch r {
	case "", RegimenProPymeGeneral, RegimenProPymeTransparente, RegimenGeneral, RegimenPersonaNatural:
		return true
	}
	return false
}
