package auth

import (
	"fmt"

	"go-profile-service/internal/domain"
	"go-profile-service/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// tokenType is the required value of the "type" claim. The auth service
// also issues refresh tokens with the same secret; those must not pass.
const tokenType = "access"

// Verifier validates bearer tokens issued by the external auth service and
// turns their claims into a domain.Identity. Verification is purely local:
// signature against the shared secret, a single allowed algorithm, fixed
// issuer and audience. No database access.
type Verifier struct {
	secret    []byte
	algorithm string
	issuer    string
	audience  string
}

func NewVerifier(secret, algorithm, issuer, audience string) *Verifier {
	return &Verifier{
		secret:    []byte(secret),
		algorithm: algorithm,
		issuer:    issuer,
		audience:  audience,
	}
}

type accessClaims struct {
	UserID         string `json:"userId"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organizationId"`
	IsActive       *bool  `json:"isActive"`
	Type           string `json:"type"`
	jwt.RegisteredClaims
}

// Verify parses and validates the token string. Every failure mode,
// malformed token, bad signature, expiry, wrong issuer/audience, wrong
// token type, maps to a 401 AppError.
func (v *Verifier) Verify(tokenString string) (domain.Identity, error) {
	var claims accessClaims

	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != v.algorithm {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{v.algorithm}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return domain.Identity{}, apperror.Unauthorized("Invalid or expired token")
	}

	if claims.Type != tokenType {
		return domain.Identity{}, apperror.Unauthorized("Token is not an access token")
	}

	// The auth service sets both sub and userId; either identifies the caller.
	subject := claims.Subject
	if subject == "" {
		subject = claims.UserID
	}
	if subject == "" {
		return domain.Identity{}, apperror.Unauthorized("Invalid token payload")
	}

	isActive := true
	if claims.IsActive != nil {
		isActive = *claims.IsActive
	}

	return domain.Identity{
		SubjectID:      subject,
		Email:          claims.Email,
		Role:           domain.Role(claims.Role),
		OrganizationID: claims.OrganizationID,
		IsActive:       isActive,
	}, nil
}
