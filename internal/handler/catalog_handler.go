package handler

import (
	"net/http"

	"gamestore/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

// NameRef is an id/name pair of reference data.
type NameRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CatalogHandler serves the platform and genre reference data.
type CatalogHandler struct {
	store *catalog.Store
}

// NewCatalogHandler creates a CatalogHandler backed by the given store.
func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// ListPlatforms godoc
// @Summary      List platforms
// @Description  Retrieves all platforms ordered alphabetically.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   NameRef
// @Failure      500  {object}  ErrorResponse
// @Router       /platforms [get]
func (h *CatalogHandler) ListPlatforms(c *gin.Context) {
	platforms, err := h.store.ListPlatforms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve platforms"})
		return
	}

	response := make([]NameRef, 0, len(platforms))
	for _, p := range platforms {
		response = append(response, NameRef{ID: p.ID, Name: p.Name})
	}
	c.JSON(http.StatusOK, response)
}

// ListGenres godoc
// @Summary      List genres
// @Description  Retrieves all genres ordered alphabetically.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   NameRef
// @Failure      500  {object}  ErrorResponse
// @Router       /genres [get]
func (h *CatalogHandler) ListGenres(c *gin.Context) {
	genres, err := h.store.ListGenres()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve genres"})
		return
	}

	response := make([]NameRef, 0, len(genres))
	for _, g := range genres {
		response = append(response, NameRef{ID: g.ID, Name: g.Name})
	}
	c.JSON(http.StatusOK, response)
}
