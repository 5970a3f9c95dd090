package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas de autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Rotas públicas de cadastro e login
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)
	}
}
