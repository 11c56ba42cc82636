package server

import (
	"os"

	"duo-server/confs"
	"duo-server/db"
	"duo-server/handlers"
	httpHandler "duo-server/handlers/http"
	"duo-server/middleware"
	"duo-server/repositories"
	"duo-server/services"
	"duo-server/usecases"
	"duo-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	jwtSecret := confs.JWTSecret()

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	noteRepo := repositories.NewNotePgRepository(s.db)
	postRepo := repositories.NewPostPgRepository(s.db)
	projectRepo := repositories.NewProjectPgRepository(s.db)
	notificationRepo := repositories.NewNotificationPgRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, jwtSecret)
	noteUseCase := usecases.NewNoteUseCase(noteRepo, userRepo)
	postUseCase := usecases.NewPostUseCase(postRepo, userRepo)
	projectUseCase := usecases.NewProjectUseCase(projectRepo, userRepo)
	notificationUseCase := usecases.NewNotificationUseCase(notificationRepo)

	// WebSocket manager and notifier
	manager := ws.NewManager()
	notifier := services.NewNotifier(manager, notificationUseCase)
	wsHandler := handlers.NewWSHandler(manager, notifier, jwtSecret)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	loginHandler := httpHandler.NewLoginHandler(userUseCase)
	noteHandler := httpHandler.NewNoteHandler(noteUseCase, notifier)
	postHandler := httpHandler.NewPostHandler(postUseCase, notifier)
	projectHandler := httpHandler.NewProjectHandler(projectUseCase)

	requireAuth := middleware.RequireAuth(jwtSecret)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// User routes
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.GET("/profile", requireAuth, userHandler.Profile)
			users.PATCH("/partner", requireAuth, userHandler.UpdatePartner)
			users.GET("/connected", requireAuth, wsHandler.GetConnectedUsers)
		}

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", loginHandler.Login)
		}

		// Note routes
		notes := api.Group("/notes", requireAuth)
		{
			notes.POST("", noteHandler.Create)
			notes.GET("", noteHandler.Inbox)
		}

		// Post routes
		posts := api.Group("/posts", requireAuth)
		{
			posts.POST("", postHandler.Create)
			posts.GET("", postHandler.Inbox)
		}

		// Project routes
		projects := api.Group("/projects", requireAuth)
		{
			projects.POST("", projectHandler.Create)
		}
	}

	s.app.GET("/ws", wsHandler.HandleUserWS)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.app.Run("0.0.0.0:" + port); err != nil {
		panic(err)
	}
}
