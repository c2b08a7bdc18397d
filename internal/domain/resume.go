package domain

import (
	"context"
	"time"
)

// ResumeMetadata describes an uploaded resume file. Ownership is transitive
// through ProfileID; there is no direct owner field. The file itself lives in
// object storage, only the descriptor is kept here.
//
// Invariant: among the active resumes of one profile, at most one is primary.
type ResumeMetadata struct {
	ID         string    `json:"_id" bson:"_id,omitempty"`
	ProfileID  string    `json:"profileId" bson:"profileId" validate:"required"`
	FileName   string    `json:"fileName" bson:"fileName" validate:"required,min=1,max=500"`
	FileSize   int64     `json:"fileSize" bson:"fileSize" validate:"gte=0"`
	MimeType   string    `json:"mimeType" bson:"mimeType" validate:"required"`
	S3Key      *string   `json:"s3Key,omitempty" bson:"s3Key,omitempty"`
	S3Bucket   *string   `json:"s3Bucket,omitempty" bson:"s3Bucket,omitempty"`
	IsActive   bool      `json:"isActive" bson:"isActive"`
	IsPrimary  bool      `json:"isPrimary" bson:"isPrimary"`
	Notes      *string   `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=1000"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploadedAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ResumeUpdate carries the mutable subset of resume metadata.
type ResumeUpdate struct {
	FileName  *string `json:"fileName,omitempty" validate:"omitempty,min=1,max=500"`
	IsActive  *bool   `json:"isActive,omitempty"`
	IsPrimary *bool   `json:"isPrimary,omitempty"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// ResumeFilter describes a resumes list query. ProfileIDs is the scope the
// policy layer resolved for the caller; empty means no profile restriction
// (org-less non-candidate callers only).
type ResumeFilter struct {
	ProfileIDs []string
	IsActive   *bool
	IsPrimary  *bool
}

type ResumeRepository interface {
	GetByID(ctx context.Context, id string) (*ResumeMetadata, error)
	Fetch(ctx context.Context, filter ResumeFilter) ([]ResumeMetadata, error)
	// Create inserts the record. When it arrives active and primary, every
	// other active resume of the same profile is demoted first, atomically
	// with respect to concurrent writers on that profile.
	Create(ctx context.Context, resume *ResumeMetadata) error
	// Update applies the partial update under the same primary-invariant
	// guarantee as Create. The current record is needed to compute the
	// effective post-update state: reactivating a still-primary record must
	// demote the others just like an explicit promotion.
	Update(ctx context.Context, current *ResumeMetadata, update *ResumeUpdate) (*ResumeMetadata, error)
	// SoftDelete marks the record inactive. It never promotes another
	// resume to primary.
	SoftDelete(ctx context.Context, id string) error
}

type ResumeUsecase interface {
	CreateResume(ctx context.Context, resume *ResumeMetadata) (*ResumeMetadata, error)
	GetResume(ctx context.Context, id string) (*ResumeMetadata, error)
	ListResumes(ctx context.Context, profileID string, isActive, isPrimary *bool) ([]ResumeMetadata, error)
	UpdateResume(ctx context.Context, id string, update *ResumeUpdate) (*ResumeMetadata, error)
	DeleteResume(ctx context.Context, id string) error
}
