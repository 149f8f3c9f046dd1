package dto

import "encoding/json"

// ChatMessage un turno de la conversación.
type ChatMessage struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// ChatRequest body para POST /api/asistente/chat.
type ChatRequest struct {
	Message  string        `json:"message"`
	History  []ChatMessage `json:"history,omitempty"`
	ClientID string        `json:"client_id,omitempty"` // agrega el contexto del cliente al prompt
}

// CommandResult resultado de un comando [AI_COMMAND:...] ejecutado por el asistente.
type CommandResult struct {
	Command string          `json:"command"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ChatResponse respuesta del asistente: texto sin los bloques de comando y resultados ejecutados.
type ChatResponse struct {
	Reply    string          `json:"reply"`
	Commands []CommandResult `json:"commands,omitempty"`
}
