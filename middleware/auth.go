package middleware

import (
	"shiftsync/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests whose session holds no OAuth tokens.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).Authenticated() {
			utils.AbortWithError(c, utils.NewAuthenticationError("Not authenticated"))
			return
		}
		c.Next()
	}
}
