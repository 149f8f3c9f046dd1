package ports

import "github.com/jhoicas/tucontable-api/internal/application/dto"

// CalendarExporter genera un documento descargable del calendario F29.
type CalendarExporter interface {
	// Export devuelve el archivo generado.
	Export(cal *dto.CalendarResponse, companyName string) ([]byte, error)
	// ContentType del archivo (ej. application/pdf).
	ContentType() string
	// Extension sin punto (ej. "pdf").
	Extension() string
}
