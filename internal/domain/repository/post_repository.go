package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
)

// PostRepository defines the interface for post documents and their embedded
// likes and comments. Mutating calls return the updated document.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	// List returns all posts, newest first.
	List(ctx context.Context) ([]entity.Post, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	AddLike(ctx context.Context, postID primitive.ObjectID, like entity.Like) (*entity.Post, error)
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*entity.Post, error)
	AddComment(ctx context.Context, postID primitive.ObjectID, comment entity.Comment) (*entity.Post, error)
	RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) (*entity.Post, error)
}
