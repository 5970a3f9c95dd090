package dto

import (
	"time"

	"github.com/hugohenrick/turismo-backend/pkg/chat"
)

// ChatRequest representa o corpo das requisições de criação e
// continuação de sessão do chatbot
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1"`
}

// ChatMessageResponse representa uma mensagem do histórico na resposta
type ChatMessageResponse struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSessionResponse representa uma sessão do chatbot na resposta.
// O histórico contém apenas a projeção pública (sem mensagens de
// sistema).
type ChatSessionResponse struct {
	ID      string                `json:"id"`
	History []ChatMessageResponse `json:"history"`
}

// ToChatSessionResponse converte uma sessão do domínio para o DTO de resposta
func ToChatSessionResponse(session *chat.Session) ChatSessionResponse {
	history := make([]ChatMessageResponse, 0, len(session.History))
	for _, m := range session.History {
		history = append(history, ChatMessageResponse{
			Type:      string(m.Type),
			Message:   m.Message,
			Timestamp: m.Timestamp,
		})
	}

	return ChatSessionResponse{
		ID:      session.ID,
		History: history,
	}
}
