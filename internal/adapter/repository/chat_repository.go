package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugohenrick/turismo-backend/pkg/chat"
)

// Coleção do Firestore para sessões do chatbot
const chatSessionsCollection = "chatbot_sessions"

// chatSessionDoc é o formato do documento persistido no Firestore
type chatSessionDoc struct {
	CreatedAt time.Time      `firestore:"createdAt"`
	UpdatedAt time.Time      `firestore:"updatedAt"`
	History   []chat.Message `firestore:"history"`
}

// FirestoreChatRepository implementa chat.Repository usando o Firestore
type FirestoreChatRepository struct {
	client *firestore.Client
}

// NewFirestoreChatRepository cria uma nova instância de FirestoreChatRepository
func NewFirestoreChatRepository(client *firestore.Client) *FirestoreChatRepository {
	return &FirestoreChatRepository{
		client: client,
	}
}

func (r *FirestoreChatRepository) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(chatSessionsCollection).Doc(id)
}

// CreateSession implementa chat.Repository.CreateSession
func (r *FirestoreChatRepository) CreateSession(ctx context.Context, session *chat.Session) error {
	doc := chatSessionDoc{
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		History:   session.History,
	}

	_, err := r.doc(session.ID).Create(ctx, doc)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return chat.ErrSessionExists
		}
		return fmt.Errorf("falha ao criar sessão: %w", err)
	}

	return nil
}

// GetSession implementa chat.Repository.GetSession
func (r *FirestoreChatRepository) GetSession(ctx context.Context, id string) (*chat.Session, error) {
	snap, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, chat.ErrSessionNotFound
		}
		return nil, fmt.Errorf("falha ao buscar sessão: %w", err)
	}

	var doc chatSessionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("falha ao decodificar sessão: %w", err)
	}

	return &chat.Session{
		ID:        snap.Ref.ID,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		History:   doc.History,
	}, nil
}

// ReplaceHistory implementa chat.Repository.ReplaceHistory. O histórico
// e o updatedAt são gravados em uma única escrita no documento.
func (r *FirestoreChatRepository) ReplaceHistory(ctx context.Context, id string, history chat.History, updatedAt time.Time) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "history", Value: []chat.Message(history)},
		{Path: "updatedAt", Value: updatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return chat.ErrSessionNotFound
		}
		return fmt.Errorf("falha ao atualizar histórico: %w", err)
	}

	return nil
}
