package main

import (
	"fmt"
	"log"
	"net/http"

	"gamestore/backend/internal/auth"
	"gamestore/backend/internal/catalog"
	"gamestore/backend/internal/config"
	"gamestore/backend/internal/database"
	"gamestore/backend/internal/handler"
	"gamestore/backend/pkg/jwt"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamestore/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Game Store API
// @version         1.0
// @description     Catalog and authentication API for the game store.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	tokens := jwt.NewManager(cfg.JWTSecret)
	store := catalog.NewStore(db)
	authService := auth.NewService(db, tokens)

	gameHandler := handler.NewGameHandler(store)
	catalogHandler := handler.NewCatalogHandler(store)
	adminHandler := handler.NewAdminGameHandler(store, cfg.UploadDir)
	authHandler := handler.NewAuthHandler(authService)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stored cover images
	router.Static("/uploads", cfg.UploadDir)

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.Refresh)
		}

		// Public catalog routes
		api.GET("/games", gameHandler.ListGames)
		api.GET("/games/:slug", gameHandler.GetGameBySlug)
		api.GET("/platforms", catalogHandler.ListPlatforms)
		api.GET("/genres", catalogHandler.ListGenres)

		// Admin routes (protected by auth and role check)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(auth.Middleware(tokens), auth.RequireRole("Admin"))
		{
			adminGames := adminRoutes.Group("/games")
			{
				adminGames.GET("", adminHandler.ListGames)
				adminGames.POST("", adminHandler.CreateGame)
				adminGames.POST("/upload-image", adminHandler.UploadImage)
				adminGames.GET("/:id", adminHandler.GetGame)
				adminGames.PUT("/:id", adminHandler.UpdateGame)
				adminGames.DELETE("/:id", adminHandler.DeleteGame)
			}
		}
	}

	addr := ":" + cfg.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:" + cfg.Port + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
