package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

// currentActor rebuilds the actor from the context values AuthMiddleware set.
func currentActor(c *gin.Context) services.Actor {
	return services.Actor{
		ID:    c.GetInt("userID"),
		Email: c.GetString("email"),
		Role:  c.GetString("role"),
	}
}

// respondError maps a service error onto the response. APIError carries its
// own status and message; anything else is logged and hidden behind a generic
// message.
func respondError(c *gin.Context, err error) {
	if apiErr, ok := services.AsAPIError(err); ok {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}
