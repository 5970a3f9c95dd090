package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHistory() History {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return History{
		{Type: MessageTypeSystem, Message: "sistema", Timestamp: base},
		{Type: MessageTypeUser, Message: "pergunta", Timestamp: base},
		{Type: MessageTypeAssistant, Message: "resposta", Timestamp: base.Add(time.Second)},
	}
}

func TestHistoryAppend(t *testing.T) {
	original := testHistory()
	appended := original.Append(Message{Type: MessageTypeUser, Message: "outra"})

	require.Len(t, appended, 4)
	assert.Equal(t, "outra", appended[3].Message)

	// O histórico original não é alterado nem compartilha o array
	require.Len(t, original, 3)
	appended[0].Message = "mutado"
	assert.Equal(t, "sistema", original[0].Message)
}

func TestHistoryPublicView(t *testing.T) {
	public := testHistory().PublicView()

	require.Len(t, public, 2)
	assert.Equal(t, MessageTypeUser, public[0].Type)
	assert.Equal(t, MessageTypeAssistant, public[1].Type)

	// Aplicar duas vezes produz o mesmo resultado
	assert.True(t, public.Equal(public.PublicView()))
}

func TestHistorySystemText(t *testing.T) {
	text, ok := testHistory().SystemText()
	require.True(t, ok)
	assert.Equal(t, "sistema", text)

	_, ok = testHistory().PublicView().SystemText()
	assert.False(t, ok)
}

func TestHistoryEqual(t *testing.T) {
	a := testHistory()
	b := testHistory()
	assert.True(t, a.Equal(b))

	b[1].Message = "diferente"
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(a[:2]))
}
