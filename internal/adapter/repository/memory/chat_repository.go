// Package memory fornece implementações em memória dos repositórios,
// usadas nos testes.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hugohenrick/turismo-backend/pkg/chat"
)

// ChatRepository implementa chat.Repository em memória
type ChatRepository struct {
	mu       sync.RWMutex
	sessions map[string]*chat.Session
}

// NewChatRepository cria uma nova instância de ChatRepository
func NewChatRepository() *ChatRepository {
	return &ChatRepository{
		sessions: make(map[string]*chat.Session),
	}
}

// CreateSession implementa chat.Repository.CreateSession
func (r *ChatRepository) CreateSession(ctx context.Context, session *chat.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return chat.ErrSessionExists
	}

	r.sessions[session.ID] = copySession(session)
	return nil
}

// GetSession implementa chat.Repository.GetSession
func (r *ChatRepository) GetSession(ctx context.Context, id string) (*chat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, chat.ErrSessionNotFound
	}

	return copySession(session), nil
}

// ReplaceHistory implementa chat.Repository.ReplaceHistory
func (r *ChatRepository) ReplaceHistory(ctx context.Context, id string, history chat.History, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return chat.ErrSessionNotFound
	}

	stored := make(chat.History, len(history))
	copy(stored, history)

	session.History = stored
	session.UpdatedAt = updatedAt
	return nil
}

// Len retorna a quantidade de sessões armazenadas
func (r *ChatRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func copySession(session *chat.Session) *chat.Session {
	history := make(chat.History, len(session.History))
	copy(history, session.History)

	return &chat.Session{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		History:   history,
	}
}
