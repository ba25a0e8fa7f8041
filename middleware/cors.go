package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured frontend origins with credentials.
// CORS_ORIGIN is a comma-separated allow list.
func CORSMiddleware() gin.HandlerFunc {
	allowed := strings.Split(os.Getenv("CORS_ORIGIN"), ",")
	if len(allowed) == 1 && allowed[0] == "" {
		allowed = []string{"http://localhost:5173"}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, o := range allowed {
			if strings.TrimSpace(o) == origin {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				break
			}
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
