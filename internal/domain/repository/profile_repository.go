package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
)

// ProfilePatch is a sparse update: nil pointer fields are left untouched,
// non-nil fields overwrite. Status and Skills are mandatory on every upsert.
type ProfilePatch struct {
	Status         string
	Skills         []string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Social         *entity.Social
}

// ProfileRepository defines the interface for profile documents and their
// embedded experience/education entries.
type ProfileRepository interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error)
	List(ctx context.Context) ([]entity.Profile, error)
	// Upsert updates the caller's profile in place, inserting it if absent,
	// and returns the resulting document.
	Upsert(ctx context.Context, userID primitive.ObjectID, patch *ProfilePatch) (*entity.Profile, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error

	AddExperience(ctx context.Context, userID primitive.ObjectID, exp entity.Experience) (*entity.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID primitive.ObjectID) (*entity.Profile, error)
	AddEducation(ctx context.Context, userID primitive.ObjectID, edu entity.Education) (*entity.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID primitive.ObjectID) (*entity.Profile, error)
}
