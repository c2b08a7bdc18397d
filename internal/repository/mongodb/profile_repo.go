package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-profile-service/internal/domain"
	"go-profile-service/pkg/apperror"
	"go-profile-service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type profileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) domain.ProfileRepository {
	return &profileRepository{collection: db.Collection(database.CollectionProfiles)}
}

// profileDocument is the stored shape of a profile. IDs are kept as plain
// strings except _id; userId/organizationId are opaque identifiers minted by
// the auth service.
type profileDocument struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	UserID         string              `bson:"userId"`
	OrganizationID string              `bson:"organizationId,omitempty"`
	FirstName      string              `bson:"firstName"`
	LastName       string              `bson:"lastName"`
	Email          string              `bson:"email"`
	Phone          *string             `bson:"phone,omitempty"`
	Location       *string             `bson:"location,omitempty"`
	Summary        *string             `bson:"summary,omitempty"`
	Skills         []string            `bson:"skills"`
	Experience     []domain.Experience `bson:"experience"`
	Education      []domain.Education  `bson:"education"`
	LinkedInURL    *string             `bson:"linkedInUrl,omitempty"`
	PortfolioURL   *string             `bson:"portfolioUrl,omitempty"`
	GithubURL      *string             `bson:"githubUrl,omitempty"`
	WebsiteURL     *string             `bson:"websiteUrl,omitempty"`
	IsActive       bool                `bson:"isActive"`
	CreatedAt      time.Time           `bson:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt"`
}

func (d *profileDocument) toEntity() *domain.Profile {
	return &domain.Profile{
		ID:             d.ID.Hex(),
		UserID:         d.UserID,
		OrganizationID: d.OrganizationID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		Phone:          d.Phone,
		Location:       d.Location,
		Summary:        d.Summary,
		Skills:         d.Skills,
		Experience:     d.Experience,
		Education:      d.Education,
		LinkedInURL:    d.LinkedInURL,
		PortfolioURL:   d.PortfolioURL,
		GithubURL:      d.GithubURL,
		WebsiteURL:     d.WebsiteURL,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid profile ID format")
	}

	var doc profileDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var doc profileDocument
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile by user: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *profileRepository) Fetch(ctx context.Context, filter domain.ProfileFilter) ([]domain.Profile, int64, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.OrganizationID != "" {
		query["organizationId"] = filter.OrganizationID
	}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": filter.Location, "$options": "i"}
	}
	if len(filter.Skills) > 0 {
		query["skills"] = bson.M{"$in": filter.Skills}
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}

	skip := int64((filter.Page - 1) * filter.Limit)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []domain.Profile{}
	for cursor.Next(ctx) {
		var doc profileDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, *doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return profiles, total, nil
}

func (r *profileRepository) IDsByOrganization(ctx context.Context, organizationID string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"organizationId": organizationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization profiles: %w", err)
	}
	defer cursor.Close(ctx)

	ids := []string{}
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID.Hex())
	}
	return ids, cursor.Err()
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	now := time.Now().UTC()
	doc := profileDocument{
		ID:             primitive.NewObjectID(),
		UserID:         profile.UserID,
		OrganizationID: profile.OrganizationID,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Email:          profile.Email,
		Phone:          profile.Phone,
		Location:       profile.Location,
		Summary:        profile.Summary,
		Skills:         profile.Skills,
		Experience:     profile.Experience,
		Education:      profile.Education,
		LinkedInURL:    profile.LinkedInURL,
		PortfolioURL:   profile.PortfolioURL,
		GithubURL:      profile.GithubURL,
		WebsiteURL:     profile.WebsiteURL,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if doc.Skills == nil {
		doc.Skills = []string{}
	}
	if doc.Experience == nil {
		doc.Experience = []domain.Experience{}
	}
	if doc.Education == nil {
		doc.Education = []domain.Education{}
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		// The unique userId index is what makes the one-profile-per-user
		// invariant hold under concurrent creates.
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("Profile already exists for this user")
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	profile.ID = doc.ID.Hex()
	profile.IsActive = doc.IsActive
	profile.CreatedAt = doc.CreatedAt
	profile.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *profileRepository) Update(ctx context.Context, id string, update *domain.ProfileUpdate) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid profile ID format")
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Summary != nil {
		set["summary"] = *update.Summary
	}
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if update.Experience != nil {
		set["experience"] = *update.Experience
	}
	if update.Education != nil {
		set["education"] = *update.Education
	}
	if update.LinkedInURL != nil {
		set["linkedInUrl"] = *update.LinkedInURL
	}
	if update.PortfolioURL != nil {
		set["portfolioUrl"] = *update.PortfolioURL
	}
	if update.GithubURL != nil {
		set["githubUrl"] = *update.GithubURL
	}
	if update.WebsiteURL != nil {
		set["websiteUrl"] = *update.WebsiteURL
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc profileDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return doc.toEntity(), nil
}
