package ports

import (
	"context"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
)

// ChatService define el puerto de salida hacia el modelo de lenguaje del asistente.
// Cualquier adaptador (Anthropic, mock) debe implementar esta interfaz; la aplicación
// solo conoce este contrato, no la implementación concreta.
type ChatService interface {
	// Complete envía el prompt de sistema y la conversación, y devuelve el texto de la respuesta.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Complete(ctx context.Context, system string, messages []dto.ChatMessage) (string, error)
}
