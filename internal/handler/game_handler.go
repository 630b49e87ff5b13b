package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gamestore/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Message string `json:"message" example:"An error message"`
}

// GameDetailResponse is a game with its resolved platform and genre names.
type GameDetailResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Price       float64  `json:"price"`
	IsDigital   bool     `json:"isDigital"`
	ImageUrl    string   `json:"imageUrl"`
	ReleaseDate string   `json:"releaseDate"`
	Platforms   []string `json:"platforms"`
	Genres      []string `json:"genres"`
}

func newGameDetailResponse(detail *catalog.GameDetail) GameDetailResponse {
	return GameDetailResponse{
		ID:          detail.Game.ID,
		Title:       detail.Game.Title,
		Slug:        detail.Game.Slug,
		Price:       detail.Game.Price,
		IsDigital:   detail.Game.IsDigital,
		ImageUrl:    detail.Game.ImageUrl,
		ReleaseDate: detail.Game.ReleaseDate,
		Platforms:   detail.PlatformNames(),
		Genres:      detail.GenreNames(),
	}
}

// endregion

// GameHandler serves the public catalog endpoints.
type GameHandler struct {
	store *catalog.Store
}

// NewGameHandler creates a GameHandler backed by the given store.
func NewGameHandler(store *catalog.Store) *GameHandler {
	return &GameHandler{store: store}
}

// ListGames godoc
// @Summary      List games
// @Description  Returns a filtered, paginated list of games ordered by ascending price.
// @Tags         games
// @Produce      json
// @Param        search    query  string  false  "Search term matched against titles, case-insensitive"
// @Param        platform  query  string  false  "Exact platform name"
// @Param        genre     query  string  false  "Exact genre name"
// @Param        page      query  int     false  "Page number"      default(1)
// @Param        pageSize  query  int     false  "Items per page"   default(10)
// @Success      200  {object}  catalog.GameList
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	list, err := h.store.ListGames(catalog.ListParams{
		Search:   c.Query("search"),
		Platform: c.Query("platform"),
		Genre:    c.Query("genre"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve games"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetGameBySlug godoc
// @Summary      Get a game by slug
// @Description  Retrieves a single game by its exact slug, including platform and genre names.
// @Tags         games
// @Produce      json
// @Param        slug  path  string  true  "Game slug"
// @Success      200  {object}  GameDetailResponse
// @Failure      404  {object}  ErrorResponse  "Game not found"
// @Router       /games/{slug} [get]
func (h *GameHandler) GetGameBySlug(c *gin.Context) {
	detail, err := h.store.GetGameBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve game"})
		return
	}

	c.JSON(http.StatusOK, newGameDetailResponse(detail))
}
