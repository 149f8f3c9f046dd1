package dto

// CalendarRequest parámetros de GET /api/calendario/f29.
type CalendarRequest struct {
	Periodo string `query:"periodo"` // YYYY-MM
	Formato string `query:"formato"` // json (defecto) | pdf | xlsx
}

// CalendarEntry vencimiento F29 de un cliente.
type CalendarEntry struct {
	ClientID         string `json:"client_id"`
	RUT              string `json:"rut"`
	RazonSocial      string `json:"razon_social"`
	FechaVencimiento string `json:"fecha_vencimiento"`
	DiasRestantes    int    `json:"dias_restantes"`
	Estado           string `json:"estado"`
	Mensaje          string `json:"mensaje"`
}

// CalendarResponse calendario F29 del estudio para un período, ordenado por fecha.
type CalendarResponse struct {
	Periodo  string          `json:"periodo"`
	Generado string          `json:"generado"` // fecha local YYYY-MM-DD
	Entries  []CalendarEntry `json:"entries"`
	// Resumen cuenta los clientes por estado (VENCIDO, URGENTE, ...).
	Resumen map[string]int `json:"resumen"`
	// Omitidos son clientes cuyo RUT guardado ya no valida.
	Omitidos []string `json:"omitidos,omitempty"`
}
