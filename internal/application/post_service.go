package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

// PostService owns post CRUD and the like/comment sub-resource rules.
type PostService struct {
	Posts  repository.PostRepository
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

// Create snapshots the author's current name/avatar onto the post; the
// snapshot is never re-joined afterwards.
func (s *PostService) Create(ctx context.Context, userID, text string) (*entity.Post, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	u, err := s.Users.GetByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p := &entity.Post{
		UserID: u.ID,
		Text:   text,
		Name:   u.Name,
		Avatar: u.Avatar,
		Date:   time.Now().UTC(),
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.List(ctx)
}

// Get returns a post; malformed ids read as not found.
func (s *PostService) Get(ctx context.Context, postID string) (*entity.Post, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrNotFound
	}
	p, err := s.Posts.GetByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// Delete removes a post, owner only.
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if p.UserID.Hex() != userID {
		return ErrForbidden
	}
	return s.Posts.Delete(ctx, p.ID)
}

// Like front-inserts the caller's like; a second like is rejected.
func (s *PostService) Like(ctx context.Context, userID, postID string) (*entity.Post, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.HasLike(uid) {
		return nil, ErrAlreadyLiked
	}
	return s.Posts.AddLike(ctx, p.ID, entity.Like{UserID: uid})
}

// Unlike removes the caller's like; absent likes are rejected.
func (s *PostService) Unlike(ctx context.Context, userID, postID string) (*entity.Post, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !p.HasLike(uid) {
		return nil, ErrNotLiked
	}
	return s.Posts.RemoveLike(ctx, p.ID, uid)
}

// AddComment front-inserts a comment with the caller's name/avatar snapshot.
func (s *PostService) AddComment(ctx context.Context, userID, postID, text string) (*entity.Post, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	u, err := s.Users.GetByID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	c := entity.Comment{
		UserID: u.ID,
		Text:   text,
		Name:   u.Name,
		Avatar: u.Avatar,
		Date:   time.Now().UTC(),
	}
	return s.Posts.AddComment(ctx, p.ID, c)
}

// RemoveComment removes a comment by its id, comment-author only.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID string) (*entity.Post, error) {
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, ErrNotFound
	}
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	c := p.FindComment(cid)
	if c == nil {
		return nil, ErrNotFound
	}
	if c.UserID.Hex() != userID {
		return nil, ErrForbidden
	}
	return s.Posts.RemoveComment(ctx, p.ID, cid)
}
