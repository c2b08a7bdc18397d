// Package policy decides whether an authenticated caller may act on a
// profile or resume, given the record's ownership chain. Evaluation is pure:
// no storage access, no side effects, just (identity, ownership) -> allow/deny.
package policy

import (
	"go-profile-service/internal/domain"
	"go-profile-service/pkg/apperror"
)

// Ownership is the resolved ownership tuple of a target record. For resumes
// it comes from the owning profile, since resumes carry no owner field.
type Ownership struct {
	UserID         string
	OrganizationID string
}

// accessRule decides access for a single role. Keeping the rules in a table
// keyed by the closed Role enum means an unhandled role is a lookup miss,
// not a forgotten else-branch.
type accessRule func(id domain.Identity, own Ownership) bool

var accessRules = map[domain.Role]accessRule{
	// Candidates act only on their own records. Organization membership
	// never widens a candidate's access.
	domain.RoleCandidate: func(id domain.Identity, own Ownership) bool {
		return id.SubjectID == own.UserID
	},
	// Org roles act on records tied to their organization. A record with
	// no organization is reachable by nobody but its owner.
	domain.RoleRecruiter:     orgRule,
	domain.RoleEmployerAdmin: orgRule,
}

func orgRule(id domain.Identity, own Ownership) bool {
	return own.OrganizationID != "" && own.OrganizationID == id.OrganizationID
}

// CanAccess gates read, update and delete on a single resolved record.
func CanAccess(id domain.Identity, own Ownership) error {
	rule, ok := accessRules[id.Role]
	if !ok {
		return apperror.Forbidden("Access denied")
	}
	if !rule(id, own) {
		if id.Role == domain.RoleCandidate {
			return apperror.Forbidden("You can only access your own records")
		}
		return apperror.Forbidden("Access denied")
	}
	return nil
}

// CanCreateProfile gates profile creation. Only candidates create profiles,
// and only for themselves: the declared owner must equal the caller before
// any record exists to resolve ownership from.
func CanCreateProfile(id domain.Identity, declaredUserID string) error {
	if id.Role != domain.RoleCandidate {
		return apperror.Forbidden("Only candidates can create profiles")
	}
	if id.SubjectID != declaredUserID {
		return apperror.Forbidden("You can only create a profile for yourself")
	}
	return nil
}

// CanList gates list queries, which have no single target record to resolve
// ownership from. Known roles proceed to scoping; anything else is denied.
func CanList(id domain.Identity) error {
	if !id.Role.Known() {
		return apperror.Forbidden("Access denied")
	}
	return nil
}

// ScopeProfileFilter confines a profiles list query to what the caller may
// see, overriding any caller-supplied userId/organizationId filters. This
// runs before the storage query; it is a confidentiality boundary, not a
// post-filter.
func ScopeProfileFilter(id domain.Identity, f *domain.ProfileFilter) {
	switch id.Role {
	case domain.RoleCandidate:
		f.UserID = id.SubjectID
	case domain.RoleRecruiter, domain.RoleEmployerAdmin:
		if id.OrganizationID != "" {
			f.OrganizationID = id.OrganizationID
		}
	}
}
