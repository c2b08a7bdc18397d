package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-profile-service/internal/delivery/http/response"
	"go-profile-service/internal/domain"
	"go-profile-service/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the bearer credential, verifies it and installs
// the resulting Identity on the request context. A missing credential is a
// 403 (no attempt to authenticate), a failed verification is a 401.
func AuthMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusForbidden, "Not authenticated", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			response.Error(c, http.StatusForbidden, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		identity, err := verifier.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, err.Error(), nil)
			c.Abort()
			return
		}

		if !identity.IsActive {
			response.Error(c, http.StatusUnauthorized, "User account is inactive", nil)
			c.Abort()
			return
		}

		// Gin keys for handlers, request context for usecases.
		c.Set(string(domain.KeyUserID), identity.SubjectID)
		c.Set(string(domain.KeyUserEmail), identity.Email)
		c.Set(string(domain.KeyUserRole), string(identity.Role))

		ctx := context.WithValue(c.Request.Context(), domain.KeyIdentity, identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
