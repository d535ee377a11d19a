package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/local-directory-api/internal/service"
	"github.com/local-directory-api/internal/slug"
	"github.com/rs/zerolog"
)

// AdminHandler handles bulk maintenance and integrity endpoints
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// RedirectAboutArticle handles GET /api/redirect-about-articles. Slugs in
// the deprecated legacy class redirect permanently to the site root; any
// other slug is not a page this endpoint knows about.
func (h *AdminHandler) RedirectAboutArticle(c *gin.Context) {
	if slug.IsLegacy(c.Query("slug")) {
		c.Redirect(http.StatusMovedPermanently, "/")
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// GetAboutURLs handles GET /api/admin/get-about-urls: lists every legacy
// article as a full canonical URL so an operator can review the set before
// removing it.
func (h *AdminHandler) GetAboutURLs(c *gin.Context) {
	urls, err := h.services.Maintenance.ListLegacyURLs(c.Request.Context())
	if err != nil {
		h.adminStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(urls),
		"urls":    urls,
		"message": fmt.Sprintf("Found %d legacy article URLs", len(urls)),
	})
}

// BulkRemoveURLs handles POST /api/admin/bulk-remove-urls: deletes every
// article in the legacy slug class and reports the exact count removed.
// Re-running after success reports zero deleted.
func (h *AdminHandler) BulkRemoveURLs(c *gin.Context) {
	deleted, err := h.services.Maintenance.RemoveLegacyArticles(c.Request.Context())
	if err != nil {
		h.adminStoreError(c, err)
		return
	}

	h.log.Info().Int("deleted", deleted).Msg("Bulk URL removal completed")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": deleted,
		"message": fmt.Sprintf("Removed %d legacy articles", deleted),
	})
}

// BulkCreateStates handles POST /api/states/bulk
func (h *AdminHandler) BulkCreateStates(c *gin.Context) {
	var req struct {
		States []string `json:"states"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.States) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "states array is required"})
		return
	}

	states, err := h.services.Maintenance.BulkInsertStates(c.Request.Context(), req.States)
	if err != nil {
		h.adminStoreError(c, err)
		return
	}
	if len(states) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid state names after trimming"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"created": len(states),
		"states":  states,
	})
}

// SlugReport handles GET /api/admin/slug-report?prefix=<p>: previews a
// slug-class operation (count plus a bounded sample) without side effects.
func (h *AdminHandler) SlugReport(c *gin.Context) {
	prefix := c.Query("prefix")
	if prefix == "" {
		prefix = slug.LegacyPrefix
	}

	report, err := h.services.Integrity.CountBySlugPrefix(c.Request.Context(), prefix)
	if err != nil {
		h.adminStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// IntegrityReport handles GET /api/admin/integrity
func (h *AdminHandler) IntegrityReport(c *gin.Context) {
	report, err := h.services.Integrity.Report(c.Request.Context())
	if err != nil {
		h.adminStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Stats handles GET /api/admin/stats with per-collection row counts
func (h *AdminHandler) Stats(c *gin.Context) {
	counts, err := h.services.Directory.EntityCounts(c.Request.Context())
	if err != nil {
		h.adminStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"database": counts})
}

// adminStoreError reports a store failure with the store's diagnostic text
// attached. These endpoints are operator-only; the detail is passed through
// deliberately to aid manual remediation.
func (h *AdminHandler) adminStoreError(c *gin.Context, err error) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Admin operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Database error",
		"details": err.Error(),
	})
}
