package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamestore/backend/internal/auth"
	"gamestore/backend/internal/catalog"
	"gamestore/backend/internal/database"
	"gamestore/backend/internal/models"
	"gamestore/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer wires the full route table against an in-memory database, the
// same way cmd/server does against postgres.
type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *jwt.Manager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	tokens := jwt.NewManager("handler-test-secret")
	store := catalog.NewStore(db)
	authService := auth.NewService(db, tokens)

	gameHandler := NewGameHandler(store)
	catalogHandler := NewCatalogHandler(store)
	adminHandler := NewAdminGameHandler(store, t.TempDir())
	authHandler := NewAuthHandler(authService)

	router := gin.New()
	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.Refresh)
		}

		api.GET("/games", gameHandler.ListGames)
		api.GET("/games/:slug", gameHandler.GetGameBySlug)
		api.GET("/platforms", catalogHandler.ListPlatforms)
		api.GET("/genres", catalogHandler.ListGenres)

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

	return &testServer{router: router, db: db, tokens: tokens}
}

// adminToken mints a token carrying the Admin role claim.
func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := s.tokens.GenerateToken(jwt.Claims{
		UserID: 1,
		Email:  "admin@example.com",
		Roles:  []string{"Admin"},
	})
	require.NoError(t, err)
	return token
}

// userToken mints a token without the Admin role.
func (s *testServer) userToken(t *testing.T) string {
	t.Helper()
	token, _, err := s.tokens.GenerateToken(jwt.Claims{
		UserID: 2,
		Email:  "user@example.com",
		Roles:  []string{"User"},
	})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func (s *testServer) seedPlatform(t *testing.T, name string) models.Platform {
	t.Helper()
	platform := models.Platform{Name: name}
	require.NoError(t, s.db.Create(&platform).Error)
	return platform
}

func (s *testServer) seedGenre(t *testing.T, name string) models.Genre {
	t.Helper()
	genre := models.Genre{Name: name}
	require.NoError(t, s.db.Create(&genre).Error)
	return genre
}

func (s *testServer) seedGame(t *testing.T, title, slug string, price float64) models.Game {
	t.Helper()
	game := models.Game{Title: title, Slug: slug, Price: price, IsDigital: true}
	require.NoError(t, s.db.Create(&game).Error)
	return game
}
