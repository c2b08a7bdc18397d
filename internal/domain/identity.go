package domain

// Role is the closed set of caller roles the policy layer understands.
// Anything outside this set is denied access outright.
type Role string

const (
	RoleCandidate     Role = "candidate"
	RoleRecruiter     Role = "recruiter"
	RoleEmployerAdmin Role = "employer_admin"
)

// Known reports whether the role is one of the recognized values. Raw claim
// values are carried as-is so the policy layer can deny unknown roles
// explicitly instead of silently coercing.
func (r Role) Known() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleEmployerAdmin:
		return true
	}
	return false
}

// Identity is the per-request representation of the authenticated caller,
// built once from validated token claims. Construction in pkg/auth is the
// only place claims are trusted; everything downstream reads this struct.
type Identity struct {
	SubjectID      string `json:"subject_id"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	OrganizationID string `json:"organization_id,omitempty"`
	IsActive       bool   `json:"is_active"`
}
