package usecase

import (
	"context"
	"strings"

	"go-profile-service/internal/domain"
	"go-profile-service/internal/policy"
	"go-profile-service/pkg/apperror"
	"go-profile-service/pkg/logger"
	"go-profile-service/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type resumeUsecase struct {
	resumes  domain.ResumeRepository
	profiles domain.ProfileRepository
	validate *validator.Validate
}

func NewResumeUsecase(resumes domain.ResumeRepository, profiles domain.ProfileRepository, validate *validator.Validate) domain.ResumeUsecase {
	return &resumeUsecase{
		resumes:  resumes,
		profiles: profiles,
		validate: validate,
	}
}

// resolveOwnership loads the profile a resume belongs to. Resumes carry no
// owner field, so the ownership tuple always comes from the profile. A
// missing profile is a data-integrity fault, not a routine not-found: it is
// logged as such before the caller sees a plain 404.
func (u *resumeUsecase) resolveOwnership(ctx context.Context, resume *domain.ResumeMetadata) (policy.Ownership, error) {
	profile, err := u.profiles.GetByID(ctx, resume.ProfileID)
	if err != nil {
		return policy.Ownership{}, err
	}
	if profile == nil {
		logger.Log.Error("Orphaned resume metadata: owning profile missing",
			"resume_id", resume.ID, "profile_id", resume.ProfileID)
		return policy.Ownership{}, apperror.NotFound("Associated profile not found")
	}
	return policy.Ownership{
		UserID:         profile.UserID,
		OrganizationID: profile.OrganizationID,
	}, nil
}

func (u *resumeUsecase) CreateResume(ctx context.Context, resume *domain.ResumeMetadata) (*domain.ResumeMetadata, error) {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	if err := u.validate.Struct(resume); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	profile, err := u.profiles.GetByID(ctx, resume.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	if err := policy.CanAccess(identity, policy.Ownership{
		UserID:         profile.UserID,
		OrganizationID: profile.OrganizationID,
	}); err != nil {
		return nil, err
	}

	if err := u.resumes.Create(ctx, resume); err != nil {
		return nil, err
	}

	logger.Log.Info("Resume metadata created", "resume_id", resume.ID, "profile_id", resume.ProfileID)
	return resume, nil
}

func (u *resumeUsecase) GetResume(ctx context.Context, id string) (*domain.ResumeMetadata, error) {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	resume, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, apperror.NotFound("Resume not found")
	}

	ownership, err := u.resolveOwnership(ctx, resume)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAccess(identity, ownership); err != nil {
		return nil, err
	}
	return resume, nil
}

func (u *resumeUsecase) ListResumes(ctx context.Context, profileID string, isActive, isPrimary *bool) ([]domain.ResumeMetadata, error) {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if err := policy.CanList(identity); err != nil {
		return nil, err
	}

	filter := domain.ResumeFilter{IsActive: isActive, IsPrimary: isPrimary}

	if profileID != "" {
		profile, err := u.profiles.GetByID(ctx, profileID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, apperror.NotFound("Profile not found")
		}
		if err := policy.CanAccess(identity, policy.Ownership{
			UserID:         profile.UserID,
			OrganizationID: profile.OrganizationID,
		}); err != nil {
			return nil, err
		}
		filter.ProfileIDs = []string{profileID}
		return u.resumes.Fetch(ctx, filter)
	}

	// No explicit target: the query is scoped to what the caller owns
	// before it ever reaches storage.
	switch identity.Role {
	case domain.RoleCandidate:
		own, err := u.profiles.GetByUserID(ctx, identity.SubjectID)
		if err != nil {
			return nil, err
		}
		if own == nil {
			return []domain.ResumeMetadata{}, nil
		}
		filter.ProfileIDs = []string{own.ID}
	case domain.RoleRecruiter, domain.RoleEmployerAdmin:
		if identity.OrganizationID != "" {
			ids, err := u.profiles.IDsByOrganization(ctx, identity.OrganizationID)
			if err != nil {
				return nil, err
			}
			if len(ids) == 0 {
				return []domain.ResumeMetadata{}, nil
			}
			filter.ProfileIDs = ids
		}
	}

	return u.resumes.Fetch(ctx, filter)
}

func (u *resumeUsecase) UpdateResume(ctx context.Context, id string, update *domain.ResumeUpdate) (*domain.ResumeMetadata, error) {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	resume, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, apperror.NotFound("Resume not found")
	}

	ownership, err := u.resolveOwnership(ctx, resume)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAccess(identity, ownership); err != nil {
		return nil, err
	}

	if err := u.validate.Struct(update); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	updated, err := u.resumes.Update(ctx, resume, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Resume not found")
	}

	logger.Log.Info("Resume metadata updated", "resume_id", id, "by", identity.SubjectID)
	return updated, nil
}

func (u *resumeUsecase) DeleteResume(ctx context.Context, id string) error {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}

	resume, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if resume == nil {
		return apperror.NotFound("Resume not found")
	}

	ownership, err := u.resolveOwnership(ctx, resume)
	if err != nil {
		return err
	}
	if err := policy.CanAccess(identity, ownership); err != nil {
		return err
	}

	if err := u.resumes.SoftDelete(ctx, id); err != nil {
		return err
	}

	logger.Log.Info("Resume metadata soft deleted", "resume_id", id, "by", identity.SubjectID)
	return nil
}
