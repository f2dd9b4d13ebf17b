package middleware

import (
	"strings"

	"skillswap-api/config"
	"skillswap-api/helper"
	"skillswap-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

// UserResolver loads the caller's current record so bans take effect on
// live tokens, not just at the next login.
type UserResolver interface {
	GetByID(id uint) (*models.User, error)
}

type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthMiddleware resolves the caller's identity from a Bearer token and
// threads it through the gin context as user_id / is_admin / is_banned.
// Every protected handler reads identity from here and nowhere else. The
// banned flag is re-read from the database on every request, so an admin
// ban cuts off an already-issued token immediately.
func AuthMiddleware(users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "User not found", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if user.IsBanned {
			HTTPHelper.SendUnauthorizedError(c, "This account has been banned, please contact support", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("is_banned", user.IsBanned)

		c.Next()
	}
}

// RequireAdmin is the single admin authorization predicate. Non-admins get a
// 403 before any admin handler runs.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists || !isAdmin.(bool) {
			HTTPHelper.SendForbiddenError(c, "Admin access required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Next()
	}
}
