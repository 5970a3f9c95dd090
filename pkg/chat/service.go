package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/turismo-backend/pkg/logger"
)

// ErrEmptyMessage é retornado quando a mensagem do usuário é vazia
var ErrEmptyMessage = errors.New("a mensagem não pode ser vazia")

// Service implementa o ciclo de vida das sessões do chatbot: criação,
// continuação e geração de respostas do assistente.
type Service struct {
	repository Repository
	completer  Completer
	logger     logger.Logger

	// Injetáveis para manter os testes determinísticos
	now          func() time.Time
	systemPrompt func() string
}

// NewService cria uma nova instância de Service
func NewService(repository Repository, completer Completer, log logger.Logger) *Service {
	return &Service{
		repository:   repository,
		completer:    completer,
		logger:       log,
		now:          time.Now,
		systemPrompt: SystemPrompt,
	}
}

// CreateSession cria uma nova sessão a partir da primeira mensagem do
// usuário, gera a primeira resposta do assistente e persiste o
// histórico completo. Retorna a sessão na projeção pública (sem a
// mensagem de sistema).
func (s *Service) CreateSession(ctx context.Context, userMessage string) (*Session, error) {
	if userMessage == "" {
		return nil, ErrEmptyMessage
	}

	now := s.now()
	history := History{
		{Type: MessageTypeSystem, Message: s.systemPrompt(), Timestamp: now},
		{Type: MessageTypeUser, Message: userMessage, Timestamp: now},
	}

	reply := s.generateReply(ctx, history)
	history = history.Append(reply)

	session := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: reply.Timestamp,
		History:   history,
	}

	if err := s.repository.CreateSession(ctx, session); err != nil {
		s.logger.Error("erro ao criar sessão do chatbot", "error", err)
		return nil, err
	}

	s.logger.Info("sessão do chatbot criada", "session_id", session.ID)
	return publicCopy(session), nil
}

// AppendMessage continua uma sessão existente: adiciona a mensagem do
// usuário, gera a resposta do assistente e sobrescreve o histórico
// persistido. Retorna a conversa acumulada completa na projeção
// pública. Retorna ErrSessionNotFound se o ID for desconhecido.
func (s *Service) AppendMessage(ctx context.Context, sessionID, userMessage string) (*Session, error) {
	if userMessage == "" {
		return nil, ErrEmptyMessage
	}

	session, err := s.repository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	history := session.History.Append(Message{
		Type:      MessageTypeUser,
		Message:   userMessage,
		Timestamp: s.now(),
	})

	reply := s.generateReply(ctx, history)
	history = history.Append(reply)

	if err := s.repository.ReplaceHistory(ctx, sessionID, history, reply.Timestamp); err != nil {
		s.logger.Error("erro ao salvar histórico da sessão", "session_id", sessionID, "error", err)
		return nil, err
	}

	session.History = history
	session.UpdatedAt = reply.Timestamp
	return publicCopy(session), nil
}

// generateReply converte o histórico em um prompt único e invoca o
// serviço de geração. Falhas do provedor nunca são propagadas: a
// sessão sempre avança com uma mensagem de assistente degradada que
// descreve o erro. O timestamp é capturado uma única vez e vale tanto
// para a mensagem quanto para o UpdatedAt da sessão.
func (s *Service) generateReply(ctx context.Context, history History) Message {
	prompt := BuildPrompt(history, s.systemPrompt())

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("falha ao gerar resposta do assistente", "error", err)
		text = fmt.Sprintf("(erro ao gerar resposta: %v)", err)
	} else if text == "" {
		text = "(sem resposta)"
	}

	return Message{
		Type:      MessageTypeAssistant,
		Message:   text,
		Timestamp: s.now(),
	}
}

// publicCopy devolve uma cópia da sessão com o histórico na projeção
// pública, para que o chamador nunca receba referência ao estado
// interno
func publicCopy(session *Session) *Session {
	return &Session{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		History:   session.History.PublicView(),
	}
}
