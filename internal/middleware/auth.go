package middleware

import (
	"errors"
	"strings"

	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/baraholka/baraholka-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// JWTAuth session token authentication middleware. Verifies signature,
// shape and expiry and stores the subject member id in the context.
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, 401, "Missing authorization header", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := jwtManager.Verify(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}

		c.Set("memberID", claims.MemberID)
		c.Next()
	}
}

// GetMemberID extracts the authenticated member id from the context
func GetMemberID(c *gin.Context) uint64 {
	memberID, exists := c.Get("memberID")
	if !exists {
		return 0
	}
	if id, ok := memberID.(uint64); ok {
		return id
	}
	return 0
}
