package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tucontable-api/internal/application/assistant"
	"github.com/jhoicas/tucontable-api/internal/application/dto"
)

// AssistantHandler chat con el asistente contable (protegido).
type AssistantHandler struct {
	uc *assistant.UseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *assistant.UseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Chat godoc
// @Summary      Conversar con el asistente
// @Description  Envía un mensaje; los cálculos que pida el modelo se ejecutan y vuelven en commands.
// @Tags         asistente
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ChatRequest  true  "mensaje, historial y cliente opcional"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/asistente/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Chat(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
