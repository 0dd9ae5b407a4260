package mw

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"reservation-prediction-backend/config"
)

// authUser is the payload returned by the auth service for a valid token.
type authUser struct {
	Role  string `json:"role"`
	Email string `json:"email"`
}

// Auth validates the request's bearer token against the external auth service
// and enforces per-path role rules. Paths without a matching rule only require
// a valid token.
func Auth(cfg *config.AuthConfig) gin.HandlerFunc {
	client := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, cfg.ValidateURL, nil)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication service unavailable"})
			return
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication service unavailable"})
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user authUser
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication service unavailable"})
			return
		}

		if roles := matchRule(cfg.AccessRules, c.Request.URL.Path); len(roles) > 0 && !contains(roles, user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access forbidden for this role"})
			return
		}

		c.Set("user_role", user.Role)
		c.Next()
	}
}

func matchRule(rules map[string][]string, path string) []string {
	for prefix, roles := range rules {
		if strings.HasPrefix(path, prefix) {
			return roles
		}
	}
	return nil
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
