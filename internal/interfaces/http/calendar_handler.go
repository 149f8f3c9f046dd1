package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tucontable-api/internal/application/calendar"
)

// CalendarHandler calendario de vencimientos F29 de la cartera (protegido).
type CalendarHandler struct {
	uc *calendar.UseCase
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(uc *calendar.UseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// F29 godoc
// @Summary      Calendario F29 de la cartera
// @Description  Vencimiento del F29 de cada cliente activo, ordenado por fecha. formato=pdf|xlsx descarga el archivo.
// @Tags         calendario
// @Produce      json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        periodo  query  string  false  "YYYY-MM; por defecto el mes anterior"
// @Param        formato  query  string  false  "json | pdf | xlsx"
// @Success      200  {object}  dto.CalendarResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/calendario/f29 [get]
func (h *CalendarHandler) F29(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	periodo := c.Query("periodo")
	formato := strings.ToLower(c.Query("formato", "json"))

	if formato == "" || formato == "json" {
		out, err := h.uc.F29(c.UserContext(), companyID, periodo)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}

	file, err := h.uc.Export(c.UserContext(), companyID, periodo, formato)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Data)
}
