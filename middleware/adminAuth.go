package middleware

import (
	"net/http"
	"strings"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware authenticates the caller like JWTAuthMiddleware, then
// requires the admin flag on the stored profile. The flag is only ever set
// by operators directly in the store.
func AdminAuthMiddleware(barbers barberRepo.BarberRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		barberID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		caller, err := barbers.GetByID(c.Request.Context(), barberID)
		if err != nil || !caller.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("barberID", barberID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
