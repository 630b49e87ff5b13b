package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gamestore/backend/internal/catalog"
	"gamestore/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxImageSize is the upload size ceiling for cover images.
const maxImageSize = 5 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// region --- DTOs ---

// GameInput is the admin request body for creating or updating a game. The
// platform and genre id lists describe the complete desired associations.
type GameInput struct {
	Title       string  `json:"title" binding:"required"`
	Slug        string  `json:"slug" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	IsDigital   bool    `json:"isDigital"`
	ImageUrl    string  `json:"imageUrl"`
	ReleaseDate string  `json:"releaseDate"`
	PlatformIDs []uint  `json:"platformIds"`
	GenreIDs    []uint  `json:"genreIds"`
}

// GameSummaryResponse is the scalar projection returned by admin writes.
type GameSummaryResponse struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Price     float64 `json:"price"`
	IsDigital bool    `json:"isDigital"`
	ImageUrl  string  `json:"imageUrl"`
}

func newGameSummaryResponse(game *models.Game) GameSummaryResponse {
	return GameSummaryResponse{
		ID:        game.ID,
		Title:     game.Title,
		Slug:      game.Slug,
		Price:     game.Price,
		IsDigital: game.IsDigital,
		ImageUrl:  game.ImageUrl,
	}
}

// AdminGameResponse is the full admin view of a game, with id/name pairs for
// its platforms and genres.
type AdminGameResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Price       float64   `json:"price"`
	IsDigital   bool      `json:"isDigital"`
	ImageUrl    string    `json:"imageUrl"`
	ReleaseDate string    `json:"releaseDate"`
	Platforms   []NameRef `json:"platforms"`
	Genres      []NameRef `json:"genres"`
}

func newAdminGameResponse(detail *catalog.GameDetail) AdminGameResponse {
	platforms := make([]NameRef, 0, len(detail.Platforms))
	for _, p := range detail.Platforms {
		platforms = append(platforms, NameRef{ID: p.ID, Name: p.Name})
	}
	genres := make([]NameRef, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		genres = append(genres, NameRef{ID: g.ID, Name: g.Name})
	}

	return AdminGameResponse{
		ID:          detail.Game.ID,
		Title:       detail.Game.Title,
		Slug:        detail.Game.Slug,
		Price:       detail.Game.Price,
		IsDigital:   detail.Game.IsDigital,
		ImageUrl:    detail.Game.ImageUrl,
		ReleaseDate: detail.Game.ReleaseDate,
		Platforms:   platforms,
		Genres:      genres,
	}
}

// UploadImageResponse carries the stored image's relative URL.
type UploadImageResponse struct {
	ImageUrl string `json:"imageUrl"`
}

// endregion

// AdminGameHandler serves the admin catalog management endpoints.
type AdminGameHandler struct {
	store     *catalog.Store
	uploadDir string
}

// NewAdminGameHandler creates an AdminGameHandler backed by the given store,
// storing uploaded images under uploadDir.
func NewAdminGameHandler(store *catalog.Store, uploadDir string) *AdminGameHandler {
	return &AdminGameHandler{store: store, uploadDir: uploadDir}
}

// ListGames godoc
// @Summary      List games with full details
// @Description  Retrieves the whole catalog with platform and genre id/name pairs.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   AdminGameResponse
// @Failure      403  {object}  ErrorResponse  "Admin access required"
// @Router       /admin/games [get]
func (h *AdminGameHandler) ListGames(c *gin.Context) {
	details, err := h.store.ListGameDetails()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve games"})
		return
	}

	response := make([]AdminGameResponse, 0, len(details))
	for i := range details {
		response = append(response, newAdminGameResponse(&details[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetGame godoc
// @Summary      Get a game by id
// @Description  Retrieves one game with platform and genre id/name pairs.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Game ID"
// @Success      200  {object}  AdminGameResponse
// @Failure      403  {object}  ErrorResponse  "Admin access required"
// @Failure      404  {object}  ErrorResponse  "Game not found"
// @Router       /admin/games/{id} [get]
func (h *AdminGameHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game ID"})
		return
	}

	detail, err := h.store.GetGame(uint(id))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve game"})
		return
	}

	c.JSON(http.StatusOK, newAdminGameResponse(detail))
}

// CreateGame godoc
// @Summary      Create a game
// @Description  Creates a new game and associates it with the given platforms and genres.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  GameInput  true  "Game info"
// @Success      201  {object}  GameSummaryResponse
// @Failure      400  {object}  ErrorResponse  "Validation failure or duplicate slug"
// @Failure      403  {object}  ErrorResponse  "Admin access required"
// @Router       /admin/games [post]
func (h *AdminGameHandler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	game, err := h.store.CreateGame(catalog.GameInput{
		Title:       input.Title,
		Slug:        input.Slug,
		Price:       input.Price,
		IsDigital:   input.IsDigital,
		ImageUrl:    input.ImageUrl,
		ReleaseDate: input.ReleaseDate,
		PlatformIDs: input.PlatformIDs,
		GenreIDs:    input.GenreIDs,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateSlug) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, newGameSummaryResponse(game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Overwrites a game's fields and replaces its platform and genre associations.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  int        true  "Game ID"
// @Param        input  body  GameInput  true  "New game info"
// @Success      200  {object}  GameSummaryResponse
// @Failure      400  {object}  ErrorResponse  "Validation failure or duplicate slug"
// @Failure      403  {object}  ErrorResponse  "Admin access required"
// @Failure      404  {object}  ErrorResponse  "Game not found"
// @Router       /admin/games/{id} [put]
func (h *AdminGameHandler) UpdateGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game ID"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	game, err := h.store.UpdateGame(uint(id), catalog.GameInput{
		Title:       input.Title,
		Slug:        input.Slug,
		Price:       input.Price,
		IsDigital:   input.IsDigital,
		ImageUrl:    input.ImageUrl,
		ReleaseDate: input.ReleaseDate,
		PlatformIDs: input.PlatformIDs,
		GenreIDs:    input.GenreIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Game not found"})
		case errors.Is(err, catalog.ErrDuplicateSlug):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Slug already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update game"})
		}
		return
	}

	c.JSON(http.StatusOK, newGameSummaryResponse(game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game and all of its platform and genre associations.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Game ID"
// @Success      204  "No Content"
// @Failure      403  {object}  ErrorResponse  "Admin access required"
// @Failure      404  {object}  ErrorResponse  "Game not found"
// @Router       /admin/games/{id} [delete]
func (h *AdminGameHandler) DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game ID"})
		return
	}

	if err := h.store.DeleteGame(uint(id)); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete game"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary      Upload a cover image
// @Description  Stores a cover image and returns its relative URL.
// @Tags         admin-games
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file (jpg, jpeg, png, gif, webp; max 5MB)"
// @Success      200  {object}  UploadImageResponse
// @Failure      400  {object}  ErrorResponse  "Missing, oversized, or unsupported file"
// @Failure      403  {object}  ErrorResponse  "Admin access required"
// @Router       /admin/games/upload-image [post]
func (h *AdminGameHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file was sent"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File type not allowed. Accepted formats: jpg, jpeg, png, gif, webp"})
		return
	}

	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File is too large. Max 5MB"})
		return
	}

	gamesDir := filepath.Join(h.uploadDir, "games")
	if err := os.MkdirAll(gamesDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store file"})
		return
	}

	fileName := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(gamesDir, fileName)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store file"})
		return
	}

	c.JSON(http.StatusOK, UploadImageResponse{ImageUrl: "/uploads/games/" + fileName})
}
