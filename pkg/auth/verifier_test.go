package auth_test

import (
	"testing"
	"time"

	"go-profile-service/internal/domain"
	"go-profile-service/pkg/apperror"
	"go-profile-service/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const (
	testSecret   = "test-secret-key-at-least-32-characters"
	testIssuer   = "matchtal-auth-service"
	testAudience = "matchtal-platform"
)

func newVerifier() *auth.Verifier {
	return auth.NewVerifier(testSecret, "HS256", testIssuer, testAudience)
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string, method jwt.SigningMethod) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func baseClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":      "user1",
		"userId":   "user1",
		"email":    "user1@example.com",
		"role":     "candidate",
		"isActive": true,
		"iss":      testIssuer,
		"aud":      testAudience,
		"type":     "access",
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
}

func TestVerifyValidToken(t *testing.T) {
	v := newVerifier()
	tokenString := signToken(t, baseClaims(), testSecret, jwt.SigningMethodHS256)

	identity, err := v.Verify(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user1", identity.SubjectID)
	assert.Equal(t, "user1@example.com", identity.Email)
	assert.Equal(t, domain.RoleCandidate, identity.Role)
	assert.True(t, identity.IsActive)
	assert.Empty(t, identity.OrganizationID)
}

func TestVerifyOrgClaims(t *testing.T) {
	v := newVerifier()
	claims := baseClaims()
	claims["role"] = "recruiter"
	claims["organizationId"] = "org1"

	identity, err := v.Verify(signToken(t, claims, testSecret, jwt.SigningMethodHS256))
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleRecruiter, identity.Role)
	assert.Equal(t, "org1", identity.OrganizationID)
}

func TestVerifyRejections(t *testing.T) {
	v := newVerifier()

	tests := []struct {
		name   string
		mutate func(jwt.MapClaims) (jwt.MapClaims, string, jwt.SigningMethod)
	}{
		{
			name: "expired token",
			mutate: func(c jwt.MapClaims) (jwt.MapClaims, string, jwt.SigningMethod) {
				c["exp"] = time.Now().Add(-time.Hour).Unix()
				return c, testSecret, jwt.SigningMethodHS256
			},
		},
		{
			name: "wrong signature",
			mutate: func(c jwt.MapClaims) (jwt.MapClaims, string, jwt.SigningMethod) {
				return c, "a-completely-different-secret-value", jwt.SigningMethodHS256
			},
		},
		{
			name: "wrong issuer",
			mutate: func(c jwt.MapClaims) (jwt.MapClaims, string, jwt.SigningMethod) {
				c["iss"] = "some-other-service"
				return c, testSecret, jwt.SigningMethodHS256
			},
		},
		{
			name: "wrong audience",
			mutate: func(c jwt.MapClaims) (jwt.MapClaims, string, jwt.SigningMethod) {
				c["aud"] = "another-platform"
				return c, testSecret, jwt.SigningMethodHS256
			},
		},
		{
			name: "refresh token type",
			mutate: func(c jwt.MapClaims) (jwt.MapClaims, string, jwt.SigningMethod) {
				c["type"] = "refresh"
				return c, testSecret, jwt.SigningMethodHS256
			},
		},
		{
			name: "disallowed algorithm",
			mutate: func(c jwt.MapClaims) (jwt.MapClaims, string, jwt.SigningMethod) {
				return c, testSecret, jwt.SigningMethodHS512
			},
		},
		{
			name: "missing expiry",
			mutate: func(c jwt.MapClaims) (jwt.MapClaims, string, jwt.SigningMethod) {
				delete(c, "exp")
				return c, testSecret, jwt.SigningMethodHS256
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, secret, method := tt.mutate(baseClaims())
			_, err := v.Verify(signToken(t, claims, secret, method))
			assert.Error(t, err)

			var appErr *apperror.AppError
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, 401, appErr.Code)
			}
		})
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	v := newVerifier()
	_, err := v.Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestVerifySubjectFallback(t *testing.T) {
	v := newVerifier()

	t.Run("userId claim stands in for a missing sub", func(t *testing.T) {
		claims := baseClaims()
		delete(claims, "sub")
		identity, err := v.Verify(signToken(t, claims, testSecret, jwt.SigningMethodHS256))
		assert.NoError(t, err)
		assert.Equal(t, "user1", identity.SubjectID)
	})

	t.Run("token with no subject at all is rejected", func(t *testing.T) {
		claims := baseClaims()
		delete(claims, "sub")
		delete(claims, "userId")
		_, err := v.Verify(signToken(t, claims, testSecret, jwt.SigningMethodHS256))
		assert.Error(t, err)
	})
}

func TestVerifyInactiveFlag(t *testing.T) {
	v := newVerifier()
	claims := baseClaims()
	claims["isActive"] = false

	identity, err := v.Verify(signToken(t, claims, testSecret, jwt.SigningMethodHS256))
	assert.NoError(t, err)
	assert.False(t, identity.IsActive)
}
