package delivery

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/varunmaharana/quick-todos-backend/internal/auth/domain"
	"github.com/varunmaharana/quick-todos-backend/internal/auth/usecase"
	"github.com/varunmaharana/quick-todos-backend/pkg/response"
)

const (
	// AccessTokenCookie and RefreshTokenCookie name the http-only cookies
	// carrying the token pair.
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	userContextKey = "user"
)

// AuthMiddleware is the request authentication gate. The access token is read
// from the cookie first, then from the Authorization header. On success the
// sanitized user is attached to the context; no other state changes.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Error(response.NewUnauthorized("Unauthorized request!"))
			c.Abort()
			return
		}

		user, err := authUsecase.Authenticate(tokenString)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// bearerToken extracts the credential, cookie taking precedence.
func bearerToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// CurrentUser returns the authenticated user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}
