package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-profile-service/internal/domain"
	"go-profile-service/pkg/apperror"
	"go-profile-service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type resumeRepository struct {
	collection *mongo.Collection

	// profileLocks serializes the demote-others + commit pair per profile.
	// Two concurrent requests marking different resumes of one profile as
	// primary must not interleave between those two steps, or both records
	// would end up primary. Map value is *sync.Mutex keyed by profileId.
	profileLocks sync.Map
}

func NewResumeRepository(db *mongo.Database) domain.ResumeRepository {
	return &resumeRepository{collection: db.Collection(database.CollectionResumes)}
}

func (r *resumeRepository) lockProfile(profileID string) func() {
	v, _ := r.profileLocks.LoadOrStore(profileID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// resumeDocument is the stored shape of resume metadata. The file itself
// lives in object storage; s3Key/s3Bucket are opaque descriptors here.
type resumeDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ProfileID  primitive.ObjectID `bson:"profileId"`
	FileName   string             `bson:"fileName"`
	FileSize   int64              `bson:"fileSize"`
	MimeType   string             `bson:"mimeType"`
	S3Key      *string            `bson:"s3Key,omitempty"`
	S3Bucket   *string            `bson:"s3Bucket,omitempty"`
	IsActive   bool               `bson:"isActive"`
	IsPrimary  bool               `bson:"isPrimary"`
	Notes      *string            `bson:"notes,omitempty"`
	UploadedAt time.Time          `bson:"uploadedAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (d *resumeDocument) toEntity() *domain.ResumeMetadata {
	return &domain.ResumeMetadata{
		ID:         d.ID.Hex(),
		ProfileID:  d.ProfileID.Hex(),
		FileName:   d.FileName,
		FileSize:   d.FileSize,
		MimeType:   d.MimeType,
		S3Key:      d.S3Key,
		S3Bucket:   d.S3Bucket,
		IsActive:   d.IsActive,
		IsPrimary:  d.IsPrimary,
		Notes:      d.Notes,
		UploadedAt: d.UploadedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *resumeRepository) GetByID(ctx context.Context, id string) (*domain.ResumeMetadata, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid resume ID format")
	}

	var doc resumeDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *resumeRepository) Fetch(ctx context.Context, filter domain.ResumeFilter) ([]domain.ResumeMetadata, error) {
	query := bson.M{}
	if len(filter.ProfileIDs) > 0 {
		oids := make([]primitive.ObjectID, 0, len(filter.ProfileIDs))
		for _, id := range filter.ProfileIDs {
			oid, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				return nil, apperror.BadRequest("Invalid profile ID format")
			}
			oids = append(oids, oid)
		}
		query["profileId"] = bson.M{"$in": oids}
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}
	if filter.IsPrimary != nil {
		query["isPrimary"] = *filter.IsPrimary
	}

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer cursor.Close(ctx)

	resumes := []domain.ResumeMetadata{}
	for cursor.Next(ctx) {
		var doc resumeDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode resume: %w", err)
		}
		resumes = append(resumes, *doc.toEntity())
	}
	return resumes, cursor.Err()
}

func (r *resumeRepository) Create(ctx context.Context, resume *domain.ResumeMetadata) error {
	profileOID, err := primitive.ObjectIDFromHex(resume.ProfileID)
	if err != nil {
		return apperror.BadRequest("Invalid profile ID format")
	}

	now := time.Now().UTC()
	doc := resumeDocument{
		ID:         primitive.NewObjectID(),
		ProfileID:  profileOID,
		FileName:   resume.FileName,
		FileSize:   resume.FileSize,
		MimeType:   resume.MimeType,
		S3Key:      resume.S3Key,
		S3Bucket:   resume.S3Bucket,
		IsActive:   resume.IsActive,
		IsPrimary:  resume.IsPrimary,
		Notes:      resume.Notes,
		UploadedAt: now,
		UpdatedAt:  now,
	}

	if resume.IsPrimary && resume.IsActive {
		unlock := r.lockProfile(resume.ProfileID)
		defer unlock()
		if err := r.demoteOtherPrimaries(ctx, profileOID, primitive.NilObjectID); err != nil {
			return err
		}
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("Resume with this storage key already exists")
		}
		return fmt.Errorf("failed to insert resume: %w", err)
	}

	resume.ID = doc.ID.Hex()
	resume.UploadedAt = doc.UploadedAt
	resume.UpdatedAt = doc.UpdatedAt
	return nil
}

// becomesActivePrimary reports whether applying the update leaves the record
// both active and primary. The demote sweep keys off this effective state,
// not off the update fields alone: a soft-deleted record keeps isPrimary, so
// reactivating it must demote the others even though the request never
// mentions isPrimary.
func becomesActivePrimary(current *domain.ResumeMetadata, update *domain.ResumeUpdate) bool {
	isPrimary := current.IsPrimary
	if update.IsPrimary != nil {
		isPrimary = *update.IsPrimary
	}
	isActive := current.IsActive
	if update.IsActive != nil {
		isActive = *update.IsActive
	}
	return isPrimary && isActive
}

func (r *resumeRepository) Update(ctx context.Context, current *domain.ResumeMetadata, update *domain.ResumeUpdate) (*domain.ResumeMetadata, error) {
	oid, err := primitive.ObjectIDFromHex(current.ID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid resume ID format")
	}
	profileOID, err := primitive.ObjectIDFromHex(current.ProfileID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid profile ID format")
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.FileName != nil {
		set["fileName"] = *update.FileName
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}
	if update.IsPrimary != nil {
		set["isPrimary"] = *update.IsPrimary
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	if becomesActivePrimary(current, update) {
		unlock := r.lockProfile(current.ProfileID)
		defer unlock()
		if err := r.demoteOtherPrimaries(ctx, profileOID, oid); err != nil {
			return nil, err
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc resumeDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return doc.toEntity(), nil
}

// demoteOtherPrimaries clears isPrimary on every active resume of the profile
// except the one being written. Callers must hold the profile lock so the
// clear step is complete before the new primary becomes visible.
func (r *resumeRepository) demoteOtherPrimaries(ctx context.Context, profileID, exclude primitive.ObjectID) error {
	filter := bson.M{"profileId": profileID, "isActive": true}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	_, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isPrimary": false}})
	if err != nil {
		return fmt.Errorf("failed to demote primary resumes: %w", err)
	}
	return nil
}

// SoftDelete marks the record inactive. Inactive records drop out of
// primary-eligibility on their own; no other resume is promoted.
func (r *resumeRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperror.BadRequest("Invalid resume ID format")
	}

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to soft delete resume: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Resume not found")
	}
	return nil
}
