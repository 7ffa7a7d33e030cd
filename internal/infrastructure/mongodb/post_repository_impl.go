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

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	if p.Likes == nil {
		p.Likes = []entity.Like{}
	}
	if p.Comments == nil {
		p.Comments = []entity.Comment{}
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var posts []entity.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	p := &entity.Post{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) AddLike(ctx context.Context, postID primitive.ObjectID, like entity.Like) (*entity.Post, error) {
	if like.ID.IsZero() {
		like.ID = primitive.NewObjectID()
	}
	return r.findAndUpdate(ctx, bson.M{"_id": postID}, bson.M{
		"$push": bson.M{"likes": bson.M{"$each": []entity.Like{like}, "$position": 0}},
	})
}

func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*entity.Post, error) {
	return r.findAndUpdate(ctx, bson.M{"_id": postID}, bson.M{
		"$pull": bson.M{"likes": bson.M{"user": userID}},
	})
}

func (r *PostRepository) AddComment(ctx context.Context, postID primitive.ObjectID, comment entity.Comment) (*entity.Post, error) {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	if comment.Date.IsZero() {
		comment.Date = time.Now().UTC()
	}
	return r.findAndUpdate(ctx, bson.M{"_id": postID}, bson.M{
		"$push": bson.M{"comments": bson.M{"$each": []entity.Comment{comment}, "$position": 0}},
	})
}

func (r *PostRepository) RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) (*entity.Post, error) {
	return r.findAndUpdate(ctx, bson.M{"_id": postID, "comments._id": commentID}, bson.M{
		"$pull": bson.M{"comments": bson.M{"_id": commentID}},
	})
}

func (r *PostRepository) findAndUpdate(ctx context.Context, filter, update bson.M) (*entity.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	p := &entity.Post{}
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
