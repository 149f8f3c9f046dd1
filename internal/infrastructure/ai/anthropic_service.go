package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/application/ports"
	"github.com/jhoicas/tucontable-api/internal/domain"
)

// Verificar en tiempo de compilación que AnthropicService implementa ChatService.
var _ ports.ChatService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
	maxTokens            = 2048
)

// AnthropicService adaptador que implementa ChatService usando la API REST de Anthropic (Claude).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// Option configura el adaptador.
type Option func(*AnthropicService)

// WithURL reemplaza el endpoint de Messages (tests, proxies).
func WithURL(url string) Option {
	return func(s *AnthropicService) { s.url = url }
}

// NewAnthropicService construye el adaptador.
// Si apiKey está vacío las llamadas devuelven domain.ErrAIUnavailable en lugar de panic.
func NewAnthropicService(apiKey, model string, opts ...Option) *AnthropicService {
	s := &AnthropicService{
		apiKey: apiKey,
		model:  model,
		url:    anthropicMessagesURL,
		httpClient: &http.Client{
			// Timeout de red; el use case impone además su propio context.WithTimeout.
			Timeout: 60 * time.Second,
		},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Complete envía el prompt de sistema y la conversación a Claude y concatena los bloques de texto.
func (s *AnthropicService) Complete(ctx context.Context, system string, messages []dto.ChatMessage) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: ANTHROPIC_API_KEY no configurado", domain.ErrAIUnavailable)
	}
	msgs := normalizeMessages(messages)
	if len(msgs) == 0 {
		return "", fmt.Errorf("AI: conversación vacía")
	}

	body, err := json.Marshal(anthropicRequest{
		Model:       s.model,
		MaxTokens:   maxTokens,
		System:      system,
		Messages:    msgs,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	var b strings.Builder
	for _, c := range anthResp.Content {
		if c.Type == "text" {
			b.WriteString(c.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return b.String(), nil
}

// normalizeMessages descarta turnos vacíos o con rol desconocido y fusiona turnos consecutivos
// del mismo rol: la API exige alternancia y que el primer turno sea del usuario.
func normalizeMessages(in []dto.ChatMessage) []anthropicMessage {
	out := make([]anthropicMessage, 0, len(in))
	for _, m := range in {
		content := strings.TrimSpace(m.Content)
		if content == "" || (m.Role != "user" && m.Role != "assistant") {
			continue
		}
		if len(out) == 0 && m.Role != "user" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Role == m.Role {
			out[n-1].Content += "\n\n" + content
			continue
		}
		out = append(out, anthropicMessage{Role: m.Role, Content: content})
	}
	return out
}
