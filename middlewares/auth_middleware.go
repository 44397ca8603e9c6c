package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/Chase-42/recipe-vault-sub002/config"
	"github.com/Chase-42/recipe-vault-sub002/models"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func abortUnauthorized(c *gin.Context, message string) {
	utils.RespondError(c, http.StatusUnauthorized, message, "UNAUTHORIZED")
	c.Abort()
}

// AuthMiddleware resolves the authenticated user from a Bearer JWT and puts
// userID and email into the request context. Everything behind it can rely
// on a valid identity.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			utils.RespondError(c, http.StatusInternalServerError, "server misconfigured: JWT_SECRET not set", "")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid claims")
			return
		}

		// Prefer the userId claim; JSON numbers decode as float64.
		if v, ok := claims["userId"].(float64); ok && v > 0 {
			c.Set("userID", uint(v))
			if email, _ := claims["email"].(string); email != "" {
				c.Set("email", email)
			}
			c.Next()
			return
		}

		// Fallback for older tokens that only carry the email.
		email, _ := claims["email"].(string)
		if email == "" {
			abortUnauthorized(c, "email claim missing")
			return
		}

		var user models.User
		if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
			abortUnauthorized(c, "user not found")
			return
		}

		c.Set("userID", user.ID)
		c.Set("email", email)
		c.Next()
	}
}

// CurrentUserID fetches the identity set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, &utils.AuthorizationError{Message: "no authenticated user"}
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, &utils.AuthorizationError{Message: "no authenticated user"}
	}
	return id, nil
}
