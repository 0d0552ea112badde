package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/pathfinder/pkg/constant"
	"github.com/pathfinder/pkg/state"
)

func ClaimIp() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(state.CurrentUserIP, c.ClientIP())
		c.Next()
	}
}

// Admin rejects requests whose admin_key header does not match key.
func Admin(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.GetHeader("admin_key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constant.UNAUTHORIZED_ACCESS})
			return
		}
		c.Next()
	}
}

// CheckAuth validates the Bearer session token issued on email verification
// and stores the user id under state.CurrentUserId.
func CheckAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
			return
		}

		authToken := strings.Split(authHeader, " ")
		if len(authToken) != 2 || authToken[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid/Malformed auth token"})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(authToken[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constant.UNAUTHORIZED_ACCESS})
			return
		}

		if exp, ok := claims["exp"].(float64); !ok || float64(time.Now().Unix()) > exp {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			return
		}

		userID, ok := claims["id"].(float64)
		if !ok || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constant.UNAUTHORIZED_ACCESS})
			return
		}
		c.Set(state.CurrentUserId, uint(userID))

		c.Next()
	}
}
