package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/local-directory-api/internal/slug"
)

// excludedPrefixes never enter the redirect resolver: administrative, API,
// static-asset, and operational paths are filtered at the boundary before
// any rule runs.
var excludedPrefixes = []string{"/api", "/admin", "/assets", "/static", "/metrics", "/health"}

// RedirectResolver intercepts every request path before normal routing and
// decides between pass-through and permanent redirect. Rules, first match
// wins:
//
//  1. /<nichePrefix>-<city-slug> redirects to /city/<city-slug>. The
//     redirect is structural, not semantic: no store lookup happens first,
//     and a nonexistent city simply lands on a page that reports not-found.
//  2. A slug query parameter carrying the legacy prefix redirects to the
//     site root.
//
// Unmatched paths pass through unchanged; the resolver never produces a
// user-visible error.
func RedirectResolver(nichePrefix string) gin.HandlerFunc {
	marker := "/" + nichePrefix + "-"

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, prefix := range excludedPrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				c.Next()
				return
			}
		}

		if rest := strings.TrimPrefix(path, marker); rest != path && rest != "" && !strings.Contains(rest, "/") {
			c.Redirect(http.StatusMovedPermanently, "/city/"+rest)
			c.Abort()
			return
		}

		if slug.IsLegacy(c.Query("slug")) {
			c.Redirect(http.StatusMovedPermanently, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
