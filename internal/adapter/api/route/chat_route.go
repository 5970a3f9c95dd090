package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/controller"
)

// SetupChatRoutes configura as rotas do chatbot
func SetupChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController) {
	// O chatbot é público: não exige autenticação
	chatRouter := router.Group("/chatbot")
	{
		chatRouter.POST("/new", chatController.Create)
		chatRouter.POST("/:id", chatController.Append)
	}
}
