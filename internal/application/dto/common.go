package dto

const (
	defaultPageLimit = 20
	maxPageLimit     = 200
)

// PageRequest paginación de listados (?limit=&offset=).
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize deja Limit en [1, 200] (20 si no viene) y Offset en >= 0.
func (p *PageRequest) Normalize() {
	switch {
	case p.Limit <= 0:
		p.Limit = defaultPageLimit
	case p.Limit > maxPageLimit:
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP. Code es estable (INVALID_RUT, NOT_FOUND...) y Message
// va en español para mostrarse tal cual.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
