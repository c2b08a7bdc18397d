package domain

import (
	"context"
	"time"
)

// Experience is a single work-history entry nested in a profile.
// Dates are YYYY-MM strings so lexical and chronological order coincide.
type Experience struct {
	Company     string  `json:"company" bson:"company" validate:"required,min=1,max=200"`
	Position    string  `json:"position" bson:"position" validate:"required,min=1,max=200"`
	StartDate   string  `json:"startDate" bson:"startDate" validate:"required,year_month"`
	EndDate     *string `json:"endDate,omitempty" bson:"endDate,omitempty" validate:"omitempty,year_month"`
	IsCurrent   bool    `json:"isCurrent" bson:"isCurrent"`
	Description *string `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=5000"`
	Location    *string `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,max=200"`
}

// Education is a single education entry nested in a profile.
type Education struct {
	Institution  string   `json:"institution" bson:"institution" validate:"required,min=1,max=200"`
	Degree       string   `json:"degree" bson:"degree" validate:"required,min=1,max=200"`
	FieldOfStudy *string  `json:"fieldOfStudy,omitempty" bson:"fieldOfStudy,omitempty" validate:"omitempty,max=200"`
	StartDate    string   `json:"startDate" bson:"startDate" validate:"required,year_month"`
	EndDate      *string  `json:"endDate,omitempty" bson:"endDate,omitempty" validate:"omitempty,year_month"`
	GPA          *float64 `json:"gpa,omitempty" bson:"gpa,omitempty" validate:"omitempty,gte=0,lte=4"`
	Description  *string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
}

// Profile is a candidate profile document. Exactly one per user, owned by
// the candidate whose UserID it carries; OrganizationID is set when the
// candidate is sourced by an organization.
type Profile struct {
	ID             string       `json:"_id" bson:"_id,omitempty"`
	UserID         string       `json:"userId" bson:"userId" validate:"required"`
	OrganizationID string       `json:"organizationId,omitempty" bson:"organizationId,omitempty"`
	FirstName      string       `json:"firstName" bson:"firstName" validate:"required,min=1,max=100"`
	LastName       string       `json:"lastName" bson:"lastName" validate:"required,min=1,max=100"`
	Email          string       `json:"email" bson:"email" validate:"required,email"`
	Phone          *string      `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=20"`
	Location       *string      `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,max=200"`
	Summary        *string      `json:"summary,omitempty" bson:"summary,omitempty" validate:"omitempty,max=2000"`
	Skills         []string     `json:"skills" bson:"skills" validate:"max=100"`
	Experience     []Experience `json:"experience" bson:"experience" validate:"dive"`
	Education      []Education  `json:"education" bson:"education" validate:"dive"`
	LinkedInURL    *string      `json:"linkedInUrl,omitempty" bson:"linkedInUrl,omitempty" validate:"omitempty,max=500"`
	PortfolioURL   *string      `json:"portfolioUrl,omitempty" bson:"portfolioUrl,omitempty" validate:"omitempty,max=500"`
	GithubURL      *string      `json:"githubUrl,omitempty" bson:"githubUrl,omitempty" validate:"omitempty,max=500"`
	WebsiteURL     *string      `json:"websiteUrl,omitempty" bson:"websiteUrl,omitempty" validate:"omitempty,max=500"`
	IsActive       bool         `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// ProfileUpdate carries the mutable subset of a profile. Nil fields are
// left untouched by the partial update.
type ProfileUpdate struct {
	FirstName    *string       `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName     *string       `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	Phone        *string       `json:"phone,omitempty" validate:"omitempty,max=20"`
	Location     *string       `json:"location,omitempty" validate:"omitempty,max=200"`
	Summary      *string       `json:"summary,omitempty" validate:"omitempty,max=2000"`
	Skills       *[]string     `json:"skills,omitempty" validate:"omitempty,max=100"`
	Experience   *[]Experience `json:"experience,omitempty" validate:"omitempty,dive"`
	Education    *[]Education  `json:"education,omitempty" validate:"omitempty,dive"`
	LinkedInURL  *string       `json:"linkedInUrl,omitempty" validate:"omitempty,max=500"`
	PortfolioURL *string       `json:"portfolioUrl,omitempty" validate:"omitempty,max=500"`
	GithubURL    *string       `json:"githubUrl,omitempty" validate:"omitempty,max=500"`
	WebsiteURL   *string       `json:"websiteUrl,omitempty" validate:"omitempty,max=500"`
	IsActive     *bool         `json:"isActive,omitempty"`
}

// ProfileFilter describes a profiles list query. UserID/OrganizationID may
// be overridden by the policy scoping before the query runs.
type ProfileFilter struct {
	UserID         string
	OrganizationID string
	Location       string
	Skills         []string
	IsActive       *bool
	Page           int
	Limit          int
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Fetch(ctx context.Context, filter ProfileFilter) ([]Profile, int64, error)
	// IDsByOrganization returns the ids of every profile tied to the
	// organization. Used to scope resume list queries for org roles.
	IDsByOrganization(ctx context.Context, organizationID string) ([]string, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, id string, update *ProfileUpdate) (*Profile, error)
}

type ProfileUsecase interface {
	CreateProfile(ctx context.Context, profile *Profile) (*Profile, error)
	GetProfile(ctx context.Context, id string) (*Profile, error)
	GetProfileByUserID(ctx context.Context, userID string) (*Profile, error)
	ListProfiles(ctx context.Context, filter ProfileFilter) ([]Profile, int64, error)
	UpdateProfile(ctx context.Context, id string, update *ProfileUpdate) (*Profile, error)
}
