package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/local-directory-api/internal/models"
	"github.com/local-directory-api/internal/service"
	"github.com/local-directory-api/internal/slug"
	"github.com/rs/zerolog"
)

// DirectoryHandler handles public directory routes and entity CRUD
type DirectoryHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(services *service.Services, log zerolog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		services: services,
		log:      log.With().Str("handler", "directory").Logger(),
	}
}

// ListStates handles GET /api/states
func (h *DirectoryHandler) ListStates(c *gin.Context) {
	states, err := h.services.Directory.ListStates(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": states})
}

// CreateState handles POST /api/states
func (h *DirectoryHandler) CreateState(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State name is required"})
		return
	}

	state, err := h.services.Directory.CreateState(c.Request.Context(), req.Name)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// ListCities handles GET /api/states/:id/cities
func (h *DirectoryHandler) ListCities(c *gin.Context) {
	cities, err := h.services.Directory.ListCities(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// CreateCity handles POST /api/cities
func (h *DirectoryHandler) CreateCity(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		StateID string `json:"state_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "City name is required"})
		return
	}
	if req.StateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state_id is required"})
		return
	}

	city, err := h.services.Directory.CreateCity(c.Request.Context(), req.Name, req.StateID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

// GetCityPage handles GET /city/:slug and GET /api/cities/:slug
func (h *DirectoryHandler) GetCityPage(c *gin.Context) {
	page, err := h.services.Directory.GetCityPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateListing handles POST /api/listings
func (h *DirectoryHandler) CreateListing(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing payload"})
		return
	}
	if listing.Business == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Business name is required"})
		return
	}
	if listing.CityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city_id is required"})
		return
	}
	if listing.ReviewRating < 0 || listing.ReviewRating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "review_rating must be between 0 and 5"})
		return
	}
	if listing.NumberOfReviews < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number_of_reviews must not be negative"})
		return
	}

	created, err := h.services.Directory.CreateListing(c.Request.Context(), &listing)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateListing handles PUT /api/listings/:id
func (h *DirectoryHandler) UpdateListing(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing payload"})
		return
	}
	listing.ID = c.Param("id")

	updated, err := h.services.Directory.UpdateListing(c.Request.Context(), &listing)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteListing handles DELETE /api/listings/:id
func (h *DirectoryHandler) DeleteListing(c *gin.Context) {
	if err := h.services.Directory.DeleteListing(c.Request.Context(), c.Param("id")); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListArticles handles GET /api/articles; only published articles are public
func (h *DirectoryHandler) ListArticles(c *gin.Context) {
	articles, err := h.services.Directory.ListArticles(c.Request.Context(), true)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:slug
func (h *DirectoryHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Directory.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// CreateArticle handles POST /api/articles
func (h *DirectoryHandler) CreateArticle(c *gin.Context) {
	var article models.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article payload"})
		return
	}
	if article.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Article title is required"})
		return
	}

	created, err := h.services.Directory.CreateArticle(c.Request.Context(), &article)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateArticle handles PUT /api/articles/:id
func (h *DirectoryHandler) UpdateArticle(c *gin.Context) {
	var article models.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article payload"})
		return
	}
	if article.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Article title is required"})
		return
	}
	article.ID = c.Param("id")

	updated, err := h.services.Directory.UpdateArticle(c.Request.Context(), &article)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteArticle handles DELETE /api/articles/:id
func (h *DirectoryHandler) DeleteArticle(c *gin.Context) {
	if err := h.services.Directory.DeleteArticle(c.Request.Context(), c.Param("id")); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// serviceError translates service failures into the response taxonomy:
// missing entity 404, slug collision or unusable title 400, anything else
// a store failure.
func (h *DirectoryHandler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, slug.ErrDuplicateSlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate slug"})
	case errors.Is(err, slug.ErrEmptySlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title produces an empty slug"})
	default:
		h.storeError(c, err)
	}
}

// storeError reports an underlying store failure. Public-facing routes get
// the stable message only; store diagnostics stay out of the response.
func (h *DirectoryHandler) storeError(c *gin.Context, err error) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Store operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}
