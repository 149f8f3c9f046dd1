// Package assistant implementa el chat contable: arma el prompt, llama al modelo y ejecuta los
// comandos [AI_COMMAND:...] que este emite contra los casos de uso tributarios y de clientes.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/application/ports"
	"github.com/jhoicas/tucontable-api/internal/domain"
	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/internal/observability/metrics"
	"github.com/jhoicas/tucontable-api/pkg/logger"
)

const (
	defaultTimeout = 30 * time.Second
	maxHistory     = 20
	maxMessageLen  = 4000
	maxCommands    = 10
)

// ClientFinder resuelve el cliente en contexto (clients.UseCase.Find).
type ClientFinder interface {
	Find(ctx context.Context, companyID, id string) (*entity.Client, error)
}

// UseCase orquesta una vuelta de chat.
type UseCase struct {
	llm        ports.ChatService
	dispatcher *Dispatcher
	clients    ClientFinder
	timeout    time.Duration
	now        func() time.Time
	log        *logger.Logger
}

// NewUseCase construye el caso de uso. timeout <= 0 usa 30 s.
func NewUseCase(llm ports.ChatService, dispatcher *Dispatcher, clients ClientFinder, timeout time.Duration, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &UseCase{
		llm:        llm,
		dispatcher: dispatcher,
		clients:    clients,
		timeout:    timeout,
		now:        time.Now,
		log:        log.Component("assistant"),
	}
}

// Chat envía el mensaje (más el historial reciente) al modelo, ejecuta los comandos de la
// respuesta y devuelve el texto limpio junto con los resultados.
func (uc *UseCase) Chat(ctx context.Context, companyID string, in dto.ChatRequest) (*dto.ChatResponse, error) {
	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return nil, fmt.Errorf("%w: message es requerido", domain.ErrInvalidInput)
	}
	if len(msg) > maxMessageLen {
		return nil, fmt.Errorf("%w: message supera %d caracteres", domain.ErrInvalidInput, maxMessageLen)
	}

	var client *entity.Client
	if in.ClientID != "" && uc.clients != nil {
		c, err := uc.clients.Find(ctx, companyID, in.ClientID)
		if err != nil {
			return nil, err
		}
		client = c
	}

	history := in.History
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	messages := make([]dto.ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, dto.ChatMessage{Role: "user", Content: msg})

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	reply, err := uc.llm.Complete(callCtx, buildSystemPrompt(client, uc.now().Format("2006-01-02")), messages)
	metrics.ObserveAssistantChat(err, time.Since(start))
	if err != nil {
		uc.log.Error().Err(err).Str("company_id", companyID).Msg("llamada al modelo fallida")
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}

	out := &dto.ChatResponse{Reply: StripCommands(reply)}
	cmds := ParseCommands(reply)
	if len(cmds) > maxCommands {
		uc.log.Warn().Int("comandos", len(cmds)).Msg("respuesta con demasiados comandos; se ejecutan los primeros")
		cmds = cmds[:maxCommands]
	}
	for _, cmd := range cmds {
		out.Commands = append(out.Commands, uc.dispatcher.Dispatch(ctx, companyID, cmd))
	}
	return out, nil
}
