package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/mattwebdev/devcamper/internal/app/auth"
	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
	"github.com/mattwebdev/devcamper/internal/pkg/auth"
)

// ActorKey is the gin context key carrying the authenticated actor
const ActorKey = "actor"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth validates the bearer token and stores the actor in the
// context. The token cookie set on login serves as a fallback for clients
// that do not send the Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			extracted, err := auth.ExtractBearerToken(authHeader)
			if err != nil {
				abortUnauthorized(c, "Invalid token format")
				return
			}
			tokenString = extracted
		} else if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
			tokenString = cookie
		}

		if tokenString == "" {
			abortUnauthorized(c, "Not authorized to access this route")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Authentication failed")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail.WithDetails("Token has expired")))
				return
			}
			abortUnauthorized(c, "Not authorized to access this route")
			return
		}

		c.Set(ActorKey, appauth.Actor{ID: claims.UserID, Role: models.Role(claims.Role)})
		c.Next()
	}
}

// RequireRoles rejects authenticated actors whose role is not in the allowed set
func (m *AuthMiddleware) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			abortUnauthorized(c, "Not authorized to access this route")
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("User role " + string(actor.Role) + " is not authorized to access this route")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// GetActor retrieves the authenticated actor stored by RequireAuth
func GetActor(c *gin.Context) (appauth.Actor, bool) {
	value, exists := c.Get(ActorKey)
	if !exists {
		return appauth.Actor{}, false
	}
	actor, ok := value.(appauth.Actor)
	return actor, ok
}

func abortUnauthorized(c *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail.WithDetails(details)))
}
