package domain

import "context"

type CtxKey string

const (
	KeyIdentity  CtxKey = "Identity"
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// IdentityFromContext pulls the authenticated Identity set by the auth
// middleware. ok is false when the request never passed authentication.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(KeyIdentity).(Identity)
	return id, ok
}
