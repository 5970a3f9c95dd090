package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/turismo-backend/pkg/chat"
)

// PostgresChatRepository implementa chat.Repository usando PostgreSQL,
// com o histórico serializado em uma coluna JSONB. Driver alternativo
// ao Firestore, selecionado por CHAT_STORE_DRIVER=postgres.
type PostgresChatRepository struct {
	db *pgxpool.Pool
}

// NewPostgresChatRepository cria uma nova instância de PostgresChatRepository
func NewPostgresChatRepository(db *pgxpool.Pool) *PostgresChatRepository {
	return &PostgresChatRepository{
		db: db,
	}
}

// CreateSession implementa chat.Repository.CreateSession
func (r *PostgresChatRepository) CreateSession(ctx context.Context, session *chat.Session) error {
	history, err := json.Marshal(session.History)
	if err != nil {
		return fmt.Errorf("falha ao serializar histórico: %w", err)
	}

	query := `
		INSERT INTO chat_sessions (id, created_at, updated_at, history)
		VALUES ($1, $2, $3, $4)
	`

	_, err = r.db.Exec(ctx, query, session.ID, session.CreatedAt, session.UpdatedAt, history)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return chat.ErrSessionExists
		}
		return fmt.Errorf("falha ao criar sessão: %w", err)
	}

	return nil
}

// GetSession implementa chat.Repository.GetSession
func (r *PostgresChatRepository) GetSession(ctx context.Context, id string) (*chat.Session, error) {
	query := `SELECT id, created_at, updated_at, history FROM chat_sessions WHERE id = $1`

	var session chat.Session
	var history []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt, &history)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrSessionNotFound
		}
		return nil, fmt.Errorf("falha ao buscar sessão: %w", err)
	}

	if err := json.Unmarshal(history, &session.History); err != nil {
		return nil, fmt.Errorf("falha ao decodificar histórico: %w", err)
	}

	return &session, nil
}

// ReplaceHistory implementa chat.Repository.ReplaceHistory
func (r *PostgresChatRepository) ReplaceHistory(ctx context.Context, id string, history chat.History, updatedAt time.Time) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("falha ao serializar histórico: %w", err)
	}

	query := `UPDATE chat_sessions SET history = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, payload, updatedAt)
	if err != nil {
		return fmt.Errorf("falha ao atualizar histórico: %w", err)
	}

	if result.RowsAffected() == 0 {
		return chat.ErrSessionNotFound
	}

	return nil
}
