package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/controller"
	"github.com/hugohenrick/turismo-backend/pkg/middleware"
)

// SetupHospitalityRoutes configura as rotas para o módulo de estabelecimentos
func SetupHospitalityRoutes(router *gin.RouterGroup, hospitalityController *controller.HospitalityController) {
	// Leitura disponível para qualquer usuário autenticado
	hospitalityRouter := router.Group("/hospitality")
	hospitalityRouter.Use(middleware.AuthMiddleware())
	{
		hospitalityRouter.GET("", hospitalityController.List)
		hospitalityRouter.GET("/:id", hospitalityController.GetByID)

		// Escritas restritas a administradores
		adminRouter := hospitalityRouter.Group("")
		adminRouter.Use(middleware.AdminRequired())
		{
			adminRouter.POST("", hospitalityController.Create)
			adminRouter.PATCH("/:id", hospitalityController.Update)
			adminRouter.DELETE("/:id", hospitalityController.Delete)
		}
	}
}
