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

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *profileUsecase) CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	// The declared owner must equal the caller before any record exists.
	if err := policy.CanCreateProfile(identity, profile.UserID); err != nil {
		return nil, err
	}

	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := u.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	logger.Log.Info("Profile created", "profile_id", profile.ID, "user_id", profile.UserID)
	return profile, nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.repo.GetByID(ctx, id)
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
	return profile, nil
}

func (u *profileUsecase) GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found for this user")
	}

	if err := policy.CanAccess(identity, policy.Ownership{
		UserID:         profile.UserID,
		OrganizationID: profile.OrganizationID,
	}); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) ListProfiles(ctx context.Context, filter domain.ProfileFilter) ([]domain.Profile, int64, error) {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, 0, apperror.Unauthorized("User not authenticated")
	}
	if err := policy.CanList(identity); err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	for i, s := range filter.Skills {
		filter.Skills[i] = strings.ToLower(strings.TrimSpace(s))
	}

	// Scoping runs last so caller-supplied filters can never widen it.
	policy.ScopeProfileFilter(identity, &filter)

	return u.repo.Fetch(ctx, filter)
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, id string, update *domain.ProfileUpdate) (*domain.Profile, error) {
	identity, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.repo.GetByID(ctx, id)
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

	if err := u.validate.Struct(update); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	updated, err := u.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	logger.Log.Info("Profile updated", "profile_id", id, "by", identity.SubjectID)
	return updated, nil
}
