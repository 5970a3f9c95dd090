package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/dto"
	"github.com/hugohenrick/turismo-backend/pkg/chat"
)

// ChatController gerencia as requisições do chatbot
type ChatController struct {
	chatService *chat.Service
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(chatService *chat.Service) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Create cria uma nova sessão do chatbot
// @Summary Cria uma nova sessão do chatbot
// @Description Cria uma sessão a partir da primeira mensagem do usuário e retorna a conversa com a primeira resposta do assistente
// @Tags chatbot
// @Accept json
// @Produce json
// @Param chat body dto.ChatRequest true "Primeira mensagem do usuário"
// @Success 201 {object} dto.ChatSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chatbot/new [post]
func (c *ChatController) Create(ctx *gin.Context) {
	var request dto.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	session, err := c.chatService.CreateSession(ctx, request.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "A mensagem não pode ser vazia", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar sessão", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToChatSessionResponse(session))
}

// Append continua uma sessão existente do chatbot
// @Summary Continua uma sessão do chatbot
// @Description Adiciona a mensagem do usuário à sessão e retorna a conversa acumulada com a nova resposta do assistente
// @Tags chatbot
// @Accept json
// @Produce json
// @Param id path string true "ID da sessão"
// @Param chat body dto.ChatRequest true "Mensagem do usuário"
// @Success 200 {object} dto.ChatSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chatbot/{id} [post]
func (c *ChatController) Append(ctx *gin.Context) {
	id := ctx.Param("id")

	var request dto.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	session, err := c.chatService.AppendMessage(ctx, id, request.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrSessionNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Sessão não encontrada", ""))
		case errors.Is(err, chat.ErrEmptyMessage):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "A mensagem não pode ser vazia", ""))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao continuar sessão", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatSessionResponse(session))
}
