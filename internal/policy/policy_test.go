package policy_test

import (
	"testing"

	"go-profile-service/internal/domain"
	"go-profile-service/internal/policy"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessCandidate(t *testing.T) {
	tests := []struct {
		name    string
		id      domain.Identity
		own     policy.Ownership
		allowed bool
	}{
		{
			name:    "owner is allowed",
			id:      domain.Identity{SubjectID: "user1", Role: domain.RoleCandidate},
			own:     policy.Ownership{UserID: "user1"},
			allowed: true,
		},
		{
			name:    "other candidate is denied",
			id:      domain.Identity{SubjectID: "user2", Role: domain.RoleCandidate},
			own:     policy.Ownership{UserID: "user1"},
			allowed: false,
		},
		{
			name: "org membership never grants candidate access",
			id: domain.Identity{
				SubjectID:      "user2",
				Role:           domain.RoleCandidate,
				OrganizationID: "org1",
			},
			own:     policy.Ownership{UserID: "user1", OrganizationID: "org1"},
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.CanAccess(tt.id, tt.own)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCanAccessOrgRoles(t *testing.T) {
	tests := []struct {
		name    string
		id      domain.Identity
		own     policy.Ownership
		allowed bool
	}{
		{
			name:    "recruiter in matching org is allowed",
			id:      domain.Identity{SubjectID: "rec1", Role: domain.RoleRecruiter, OrganizationID: "org1"},
			own:     policy.Ownership{UserID: "user1", OrganizationID: "org1"},
			allowed: true,
		},
		{
			name:    "recruiter in different org is denied",
			id:      domain.Identity{SubjectID: "rec1", Role: domain.RoleRecruiter, OrganizationID: "org1"},
			own:     policy.Ownership{UserID: "user1", OrganizationID: "org2"},
			allowed: false,
		},
		{
			name:    "org-less resource is denied to non-candidates",
			id:      domain.Identity{SubjectID: "rec1", Role: domain.RoleRecruiter, OrganizationID: "org1"},
			own:     policy.Ownership{UserID: "user1"},
			allowed: false,
		},
		{
			name:    "employer admin in matching org is allowed",
			id:      domain.Identity{SubjectID: "adm1", Role: domain.RoleEmployerAdmin, OrganizationID: "org1"},
			own:     policy.Ownership{UserID: "user1", OrganizationID: "org1"},
			allowed: true,
		},
		{
			name:    "employer admin without org is denied",
			id:      domain.Identity{SubjectID: "adm1", Role: domain.RoleEmployerAdmin},
			own:     policy.Ownership{UserID: "user1", OrganizationID: "org1"},
			allowed: false,
		},
		{
			name:    "unknown role is always denied",
			id:      domain.Identity{SubjectID: "x", Role: domain.Role("superuser"), OrganizationID: "org1"},
			own:     policy.Ownership{UserID: "x", OrganizationID: "org1"},
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.CanAccess(tt.id, tt.own)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCanCreateProfile(t *testing.T) {
	t.Run("candidate creating own profile is allowed", func(t *testing.T) {
		id := domain.Identity{SubjectID: "user1", Role: domain.RoleCandidate}
		assert.NoError(t, policy.CanCreateProfile(id, "user1"))
	})

	t.Run("candidate declaring someone else as owner is denied", func(t *testing.T) {
		id := domain.Identity{SubjectID: "user1", Role: domain.RoleCandidate}
		err := policy.CanCreateProfile(id, "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only create a profile for yourself")
	})

	t.Run("non-candidates cannot create profiles", func(t *testing.T) {
		id := domain.Identity{SubjectID: "rec1", Role: domain.RoleRecruiter, OrganizationID: "org1"}
		err := policy.CanCreateProfile(id, "rec1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only candidates can create profiles")
	})
}

func TestScopeProfileFilter(t *testing.T) {
	t.Run("candidate scope overrides caller-supplied userId filter", func(t *testing.T) {
		id := domain.Identity{SubjectID: "user1", Role: domain.RoleCandidate}
		f := domain.ProfileFilter{UserID: "victim"}
		policy.ScopeProfileFilter(id, &f)
		assert.Equal(t, "user1", f.UserID)
	})

	t.Run("org role scope overrides caller-supplied organizationId filter", func(t *testing.T) {
		id := domain.Identity{SubjectID: "rec1", Role: domain.RoleRecruiter, OrganizationID: "org1"}
		f := domain.ProfileFilter{OrganizationID: "org2"}
		policy.ScopeProfileFilter(id, &f)
		assert.Equal(t, "org1", f.OrganizationID)
	})

	t.Run("org-less recruiter keeps caller filters only", func(t *testing.T) {
		id := domain.Identity{SubjectID: "rec1", Role: domain.RoleRecruiter}
		f := domain.ProfileFilter{Location: "Berlin"}
		policy.ScopeProfileFilter(id, &f)
		assert.Empty(t, f.UserID)
		assert.Empty(t, f.OrganizationID)
		assert.Equal(t, "Berlin", f.Location)
	})
}

func TestCanList(t *testing.T) {
	assert.NoError(t, policy.CanList(domain.Identity{Role: domain.RoleCandidate}))
	assert.NoError(t, policy.CanList(domain.Identity{Role: domain.RoleRecruiter}))
	assert.Error(t, policy.CanList(domain.Identity{Role: domain.Role("superuser")}))
}
