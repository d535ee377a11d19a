package api

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/local-directory-api/internal/config"
	"github.com/rs/zerolog"
)

// AuthHandler exchanges the shared admin credential for a session token
type AuthHandler struct {
	cfg *config.AuthConfig
	log zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(cfg *config.AuthConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg: cfg,
		log: log.With().Str("handler", "auth").Logger(),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. The credential is a single shared
// admin user; a successful check issues a short-lived HS256 token that
// gates every mutating route.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		h.log.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  h.cfg.AdminUser,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(h.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to sign session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      signed,
		"expires_at": now.Add(h.cfg.TokenTTL).Format(time.RFC3339),
	})
}

// AdminAuth verifies the bearer token issued by Login. Every mutating
// administrative route sits behind this gate.
func AdminAuth(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access only"})
			return
		}

		c.Set("admin_user", claims["sub"])
		c.Next()
	}
}
