package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/turismo-backend/pkg/logger"
)

const testSystemPrompt = "Você é um assistente de turismo."

// completerFunc adapta uma função para a interface Completer
type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// fakeRepository implementa Repository em memória para os testes
type fakeRepository struct {
	sessions   map[string]*Session
	replaceErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sessions: make(map[string]*Session)}
}

func (r *fakeRepository) CreateSession(ctx context.Context, session *Session) error {
	if _, ok := r.sessions[session.ID]; ok {
		return ErrSessionExists
	}
	history := make(History, len(session.History))
	copy(history, session.History)
	r.sessions[session.ID] = &Session{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		History:   history,
	}
	return nil
}

func (r *fakeRepository) GetSession(ctx context.Context, id string) (*Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	history := make(History, len(session.History))
	copy(history, session.History)
	return &Session{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		History:   history,
	}, nil
}

func (r *fakeRepository) ReplaceHistory(ctx context.Context, id string, history History, updatedAt time.Time) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	session, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	stored := make(History, len(history))
	copy(stored, history)
	session.History = stored
	session.UpdatedAt = updatedAt
	return nil
}

// fakeClock avança um segundo a cada chamada, para que cada mensagem
// receba um timestamp distinto e determinístico
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(time.Second)
	return now
}

func newTestService(repo Repository, complete completerFunc) *Service {
	s := NewService(repo, complete, logger.NewNopLogger())
	s.now = newFakeClock().Now
	s.systemPrompt = func() string { return testSystemPrompt }
	return s
}

func TestCreateSession(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, func(ctx context.Context, prompt string) (string, error) {
		return "Olá! Como posso ajudar?", nil
	})

	session, err := service.CreateSession(context.Background(), "Quero visitar Lisboa")
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)

	// A projeção pública não contém a mensagem de sistema
	require.Len(t, session.History, 2)
	assert.Equal(t, MessageTypeUser, session.History[0].Type)
	assert.Equal(t, "Quero visitar Lisboa", session.History[0].Message)
	assert.Equal(t, MessageTypeAssistant, session.History[1].Type)
	assert.Equal(t, "Olá! Como posso ajudar?", session.History[1].Message)

	// O histórico persistido contém a mensagem de sistema no índice zero
	stored, err := repo.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, stored.History, 3)
	assert.Equal(t, MessageTypeSystem, stored.History[0].Type)
	assert.Equal(t, testSystemPrompt, stored.History[0].Message)

	// As mensagens de sistema e do usuário compartilham o timestamp de
	// criação; o UpdatedAt é o timestamp da resposta do assistente
	assert.True(t, stored.History[0].Timestamp.Equal(stored.History[1].Timestamp))
	assert.True(t, stored.UpdatedAt.Equal(stored.History[2].Timestamp))
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))
}

func TestCreateSessionEmptyMessage(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, func(ctx context.Context, prompt string) (string, error) {
		t.Fatal("o serviço de geração não deve ser chamado")
		return "", nil
	})

	session, err := service.CreateSession(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Nil(t, session)
	assert.Empty(t, repo.sessions)
}

func TestCreateSessionPrompt(t *testing.T) {
	var gotPrompt string
	service := newTestService(newFakeRepository(), func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "resposta", nil
	})

	_, err := service.CreateSession(context.Background(), "Oi")
	require.NoError(t, err)
	assert.Equal(t, testSystemPrompt+"\n\nUser: Oi\nAssistant:", gotPrompt)
}

func TestCreateSessionCompleterFailure(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("quota excedida")
	})

	// Falha do provedor não derruba a operação: a sessão é criada com
	// uma resposta degradada que descreve o erro
	session, err := service.CreateSession(context.Background(), "Oi")
	require.NoError(t, err)
	require.Len(t, session.History, 2)
	assert.Equal(t, MessageTypeAssistant, session.History[1].Type)
	assert.Equal(t, "(erro ao gerar resposta: quota excedida)", session.History[1].Message)

	stored, err := repo.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, stored.History, 3)
}

func TestCreateSessionEmptyCompletion(t *testing.T) {
	service := newTestService(newFakeRepository(), func(ctx context.Context, prompt string) (string, error) {
		return "", nil
	})

	session, err := service.CreateSession(context.Background(), "Oi")
	require.NoError(t, err)
	assert.Equal(t, "(sem resposta)", session.History[1].Message)
}

func TestAppendMessage(t *testing.T) {
	repo := newFakeRepository()
	replies := []string{"primeira resposta", "segunda resposta"}
	service := newTestService(repo, func(ctx context.Context, prompt string) (string, error) {
		reply := replies[0]
		replies = replies[1:]
		return reply, nil
	})

	created, err := service.CreateSession(context.Background(), "Oi")
	require.NoError(t, err)

	before, err := repo.GetSession(context.Background(), created.ID)
	require.NoError(t, err)

	session, err := service.AppendMessage(context.Background(), created.ID, "E restaurantes?")
	require.NoError(t, err)

	// A resposta carrega a conversa pública acumulada completa
	require.Len(t, session.History, 4)
	assert.Equal(t, MessageTypeUser, session.History[0].Type)
	assert.Equal(t, MessageTypeAssistant, session.History[1].Type)
	assert.Equal(t, "E restaurantes?", session.History[2].Message)
	assert.Equal(t, "segunda resposta", session.History[3].Message)

	// O histórico persistido é uma extensão estrita do anterior
	after, err := repo.GetSession(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, after.History, 5)
	assert.True(t, before.History.Equal(after.History[:len(before.History)]))

	// UpdatedAt acompanha o timestamp da última resposta
	assert.True(t, after.UpdatedAt.Equal(after.History[4].Timestamp))
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
}

func TestAppendMessagePrompt(t *testing.T) {
	repo := newFakeRepository()
	var prompts []string
	service := newTestService(repo, func(ctx context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return "resposta", nil
	})

	created, err := service.CreateSession(context.Background(), "Oi")
	require.NoError(t, err)

	_, err = service.AppendMessage(context.Background(), created.ID, "Tudo bem?")
	require.NoError(t, err)

	// O prompt reconstrói a transcrição completa na ordem original
	require.Len(t, prompts, 2)
	assert.Equal(t, testSystemPrompt+"\n\nUser: Oi\nAssistant: resposta\nUser: Tudo bem?\nAssistant:", prompts[1])
}

func TestAppendMessageUnknownSession(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, func(ctx context.Context, prompt string) (string, error) {
		t.Fatal("o serviço de geração não deve ser chamado")
		return "", nil
	})

	session, err := service.AppendMessage(context.Background(), "nao-existe", "Oi")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, session)
	assert.Empty(t, repo.sessions)
}

func TestAppendMessageEmpty(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, func(ctx context.Context, prompt string) (string, error) {
		return "resposta", nil
	})

	created, err := service.CreateSession(context.Background(), "Oi")
	require.NoError(t, err)

	before, err := repo.GetSession(context.Background(), created.ID)
	require.NoError(t, err)

	session, err := service.AppendMessage(context.Background(), created.ID, "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Nil(t, session)

	// Mensagem vazia não altera o histórico persistido
	after, err := repo.GetSession(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, before.History.Equal(after.History))
}

func TestAppendMessagePersistFailure(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, func(ctx context.Context, prompt string) (string, error) {
		return "resposta", nil
	})

	created, err := service.CreateSession(context.Background(), "Oi")
	require.NoError(t, err)

	repo.replaceErr = errors.New("banco indisponível")

	_, err = service.AppendMessage(context.Background(), created.ID, "Tudo bem?")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyMessage)
}
