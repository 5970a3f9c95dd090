package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/turismo-backend/internal/adapter/repository/memory"
	"github.com/hugohenrick/turismo-backend/pkg/chat"
)

func testSession(id string) *chat.Session {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &chat.Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		History: chat.History{
			{Type: chat.MessageTypeSystem, Message: "sistema", Timestamp: now},
			{Type: chat.MessageTypeUser, Message: "pergunta", Timestamp: now},
		},
	}
}

func TestCreateAndGetSession(t *testing.T) {
	repo := memory.NewChatRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, testSession("s1")))
	assert.Equal(t, 1, repo.Len())

	got, err := repo.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.True(t, got.History.Equal(testSession("s1").History))
}

func TestCreateSessionDuplicate(t *testing.T) {
	repo := memory.NewChatRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, testSession("s1")))
	assert.ErrorIs(t, repo.CreateSession(ctx, testSession("s1")), chat.ErrSessionExists)
}

func TestGetSessionNotFound(t *testing.T) {
	repo := memory.NewChatRepository()

	_, err := repo.GetSession(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, chat.ErrSessionNotFound)
}

func TestGetSessionReturnsCopy(t *testing.T) {
	repo := memory.NewChatRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, testSession("s1")))

	got, err := repo.GetSession(ctx, "s1")
	require.NoError(t, err)
	got.History[0].Message = "mutado"

	again, err := repo.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "sistema", again.History[0].Message)
}

func TestReplaceHistory(t *testing.T) {
	repo := memory.NewChatRepository()
	ctx := context.Background()

	session := testSession("s1")
	require.NoError(t, repo.CreateSession(ctx, session))

	updatedAt := session.UpdatedAt.Add(time.Minute)
	history := session.History.Append(chat.Message{
		Type:      chat.MessageTypeAssistant,
		Message:   "resposta",
		Timestamp: updatedAt,
	})

	require.NoError(t, repo.ReplaceHistory(ctx, "s1", history, updatedAt))

	got, err := repo.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, got.History, 3)
	assert.True(t, got.UpdatedAt.Equal(updatedAt))
	assert.True(t, got.CreatedAt.Equal(session.CreatedAt))
}

func TestReplaceHistoryNotFound(t *testing.T) {
	repo := memory.NewChatRepository()

	err := repo.ReplaceHistory(context.Background(), "nao-existe", chat.History{}, time.Now())
	assert.ErrorIs(t, err, chat.ErrSessionNotFound)
}
