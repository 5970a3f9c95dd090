package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/controller"
	"github.com/hugohenrick/turismo-backend/pkg/middleware"
)

// SetupBookingRoutes configura as rotas para o módulo de reservas
func SetupBookingRoutes(router *gin.RouterGroup, bookingController *controller.BookingController) {
	// Todas as rotas de reservas requerem autenticação
	bookingRouter := router.Group("/bookings")
	bookingRouter.Use(middleware.AuthMiddleware())
	{
		bookingRouter.POST("", bookingController.Create)
		bookingRouter.GET("", bookingController.List)
		bookingRouter.GET("/:id", bookingController.GetByID)
		bookingRouter.DELETE("/:id", bookingController.Delete)
	}
}
