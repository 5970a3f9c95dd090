package main

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/turismo-backend/docs"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/controller"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/route"
	"github.com/hugohenrick/turismo-backend/internal/adapter/repository"
	"github.com/hugohenrick/turismo-backend/internal/infrastructure/database"
	"github.com/hugohenrick/turismo-backend/pkg/chat"
	"github.com/hugohenrick/turismo-backend/pkg/gemini"
	"github.com/hugohenrick/turismo-backend/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router                *gin.Engine
	log                   logger.Logger
	firestoreClient       *firestore.Client
	pool                  *pgxpool.Pool
	chatController        *controller.ChatController
	bookingController     *controller.BookingController
	hospitalityController *controller.HospitalityController
	authController        *controller.AuthController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()
	ctx := context.Background()

	// O Firestore é o armazenamento principal de reservas,
	// estabelecimentos e usuários
	firestoreClient, err := database.NewFirestoreClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao Firestore: %w", err)
	}

	// Criar repositórios
	bookingRepo := repository.NewFirestoreBookingRepository(firestoreClient)
	hospitalityRepo := repository.NewFirestoreHospitalityRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)

	// As sessões do chatbot podem ser armazenadas no PostgreSQL
	// (CHAT_STORE_DRIVER=postgres) ou no Firestore (padrão)
	var chatRepo chat.Repository
	var pool *pgxpool.Pool
	if os.Getenv("CHAT_STORE_DRIVER") == "postgres" {
		pool, err = database.NewPostgresDB()
		if err != nil {
			firestoreClient.Close()
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		chatRepo = repository.NewPostgresChatRepository(pool)
		log.Info("Sessões do chatbot armazenadas no PostgreSQL")
	} else {
		chatRepo = repository.NewFirestoreChatRepository(firestoreClient)
		log.Info("Sessões do chatbot armazenadas no Firestore")
	}

	// Criar serviço do chatbot
	chatService := chat.NewService(chatRepo, gemini.NewClient(log), log)

	// Criar controllers
	chatController := controller.NewChatController(chatService)
	bookingController := controller.NewBookingController(bookingRepo)
	hospitalityController := controller.NewHospitalityController(hospitalityRepo)
	authController := controller.NewAuthController(userRepo)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())

	// Configurar CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	return &App{
		router:                router,
		log:                   log,
		firestoreClient:       firestoreClient,
		pool:                  pool,
		chatController:        chatController,
		bookingController:     bookingController,
		hospitalityController: hospitalityController,
		authController:        authController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupAuthRoutes(api, a.authController)
	route.SetupBookingRoutes(api, a.bookingController)
	route.SetupHospitalityRoutes(api, a.hospitalityController)
	route.SetupChatRoutes(api, a.chatController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("Servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.firestoreClient != nil {
		a.firestoreClient.Close()
	}
}
