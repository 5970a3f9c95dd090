package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/turismo-backend/internal/adapter/api/controller"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/dto"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/route"
	"github.com/hugohenrick/turismo-backend/internal/adapter/repository/memory"
	"github.com/hugohenrick/turismo-backend/pkg/chat"
	"github.com/hugohenrick/turismo-backend/pkg/logger"
)

// completerFunc adapta uma função para a interface chat.Completer
type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func newChatRouter(complete completerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := chat.NewService(memory.NewChatRepository(), complete, logger.NewNopLogger())

	router := gin.New()
	api := router.Group("/api/v1")
	route.SetupChatRoutes(api, controller.NewChatController(service))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestChatCreateSession(t *testing.T) {
	router := newChatRouter(func(ctx context.Context, prompt string) (string, error) {
		return "Olá! Posso sugerir vários passeios.", nil
	})

	recorder := postJSON(t, router, "/api/v1/chatbot/new", `{"message":"Quero visitar o Porto"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response dto.ChatSessionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotEmpty(t, response.ID)

	// A mensagem de sistema nunca aparece na resposta
	require.Len(t, response.History, 2)
	assert.Equal(t, "user", response.History[0].Type)
	assert.Equal(t, "Quero visitar o Porto", response.History[0].Message)
	assert.Equal(t, "assistant", response.History[1].Type)
	assert.Equal(t, "Olá! Posso sugerir vários passeios.", response.History[1].Message)
}

func TestChatCreateSessionInvalidBody(t *testing.T) {
	router := newChatRouter(func(ctx context.Context, prompt string) (string, error) {
		return "resposta", nil
	})

	recorder := postJSON(t, router, "/api/v1/chatbot/new", `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestChatCreateSessionCompleterFailure(t *testing.T) {
	router := newChatRouter(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("serviço indisponível")
	})

	// Falha do provedor não vira erro HTTP: a sessão é criada com uma
	// resposta degradada
	recorder := postJSON(t, router, "/api/v1/chatbot/new", `{"message":"Oi"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response dto.ChatSessionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.History, 2)
	assert.Contains(t, response.History[1].Message, "erro ao gerar resposta")
}

func TestChatAppendMessage(t *testing.T) {
	router := newChatRouter(func(ctx context.Context, prompt string) (string, error) {
		return "resposta", nil
	})

	recorder := postJSON(t, router, "/api/v1/chatbot/new", `{"message":"Oi"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created dto.ChatSessionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

	recorder = postJSON(t, router, "/api/v1/chatbot/"+created.ID, `{"message":"E museus?"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.ChatSessionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, created.ID, response.ID)

	// A resposta carrega a conversa acumulada completa
	require.Len(t, response.History, 4)
	assert.Equal(t, "E museus?", response.History[2].Message)
}

func TestChatAppendMessageUnknownSession(t *testing.T) {
	router := newChatRouter(func(ctx context.Context, prompt string) (string, error) {
		return "resposta", nil
	})

	recorder := postJSON(t, router, "/api/v1/chatbot/nao-existe", `{"message":"Oi"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
