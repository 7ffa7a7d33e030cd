package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection("profiles")}
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error) {
	p := &entity.Profile{}
	err := r.col.FindOne(ctx, bson.M{"user": userID}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]entity.Profile, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var profiles []entity.Profile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Upsert applies the sparse patch with $set so omitted fields keep their
// stored values, inserting the document when the user has no profile yet.
func (r *ProfileRepository) Upsert(ctx context.Context, userID primitive.ObjectID, patch *repository.ProfilePatch) (*entity.Profile, error) {
	set := bson.M{
		"status": patch.Status,
		"skills": patch.Skills,
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Website != nil {
		set["website"] = *patch.Website
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.GithubUsername != nil {
		set["githubusername"] = *patch.GithubUsername
	}
	if patch.Social != nil {
		set["social"] = patch.Social
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"user":       userID,
			"experience": []entity.Experience{},
			"education":  []entity.Education{},
			"date":       time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	p := &entity.Profile{}
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"user": userID}, update, opts).Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"user": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) AddExperience(ctx context.Context, userID primitive.ObjectID, exp entity.Experience) (*entity.Profile, error) {
	if exp.ID.IsZero() {
		exp.ID = primitive.NewObjectID()
	}
	return r.findAndUpdate(ctx, bson.M{"user": userID}, bson.M{
		"$push": bson.M{"experience": bson.M{"$each": []entity.Experience{exp}, "$position": 0}},
	})
}

func (r *ProfileRepository) RemoveExperience(ctx context.Context, userID, expID primitive.ObjectID) (*entity.Profile, error) {
	// Filter on the entry id so a stale id yields not-found instead of a
	// silent no-op.
	return r.findAndUpdate(ctx, bson.M{"user": userID, "experience._id": expID}, bson.M{
		"$pull": bson.M{"experience": bson.M{"_id": expID}},
	})
}

func (r *ProfileRepository) AddEducation(ctx context.Context, userID primitive.ObjectID, edu entity.Education) (*entity.Profile, error) {
	if edu.ID.IsZero() {
		edu.ID = primitive.NewObjectID()
	}
	return r.findAndUpdate(ctx, bson.M{"user": userID}, bson.M{
		"$push": bson.M{"education": bson.M{"$each": []entity.Education{edu}, "$position": 0}},
	})
}

func (r *ProfileRepository) RemoveEducation(ctx context.Context, userID, eduID primitive.ObjectID) (*entity.Profile, error) {
	return r.findAndUpdate(ctx, bson.M{"user": userID, "education._id": eduID}, bson.M{
		"$pull": bson.M{"education": bson.M{"_id": eduID}},
	})
}

func (r *ProfileRepository) findAndUpdate(ctx context.Context, filter, update bson.M) (*entity.Profile, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	p := &entity.Profile{}
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
