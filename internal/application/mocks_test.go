package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

// mockUserRepo implements repository.UserRepository for unit tests.
// Each method field can be overridden per test case; unset methods report
// not-found / no-op.
type mockUserRepo struct {
	createFn     func(ctx context.Context, u *entity.User) error
	getByIDFn    func(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	getByIDsFn   func(ctx context.Context, ids []primitive.ObjectID) ([]entity.User, error)
	deleteFn     func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	if m.createFn == nil {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	if m.getByIDFn == nil {
		return nil, repository.ErrNotFound
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.getByEmailFn == nil {
		return nil, repository.ErrNotFound
	}
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.User, error) {
	if m.getByIDsFn == nil {
		return nil, nil
	}
	return m.getByIDsFn(ctx, ids)
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

// mockProfileRepo implements repository.ProfileRepository.
type mockProfileRepo struct {
	getByUserFn  func(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error)
	listFn       func(ctx context.Context) ([]entity.Profile, error)
	upsertFn     func(ctx context.Context, userID primitive.ObjectID, patch *repository.ProfilePatch) (*entity.Profile, error)
	deleteFn     func(ctx context.Context, userID primitive.ObjectID) error
	addExpFn     func(ctx context.Context, userID primitive.ObjectID, exp entity.Experience) (*entity.Profile, error)
	removeExpFn  func(ctx context.Context, userID, expID primitive.ObjectID) (*entity.Profile, error)
	addEduFn     func(ctx context.Context, userID primitive.ObjectID, edu entity.Education) (*entity.Profile, error)
	removeEduFn  func(ctx context.Context, userID, eduID primitive.ObjectID) (*entity.Profile, error)
}

func (m *mockProfileRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error) {
	if m.getByUserFn == nil {
		return nil, repository.ErrNotFound
	}
	return m.getByUserFn(ctx, userID)
}

func (m *mockProfileRepo) List(ctx context.Context) ([]entity.Profile, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, userID primitive.ObjectID, patch *repository.ProfilePatch) (*entity.Profile, error) {
	return m.upsertFn(ctx, userID, patch)
}

func (m *mockProfileRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if m.deleteFn == nil {
		return repository.ErrNotFound
	}
	return m.deleteFn(ctx, userID)
}

func (m *mockProfileRepo) AddExperience(ctx context.Context, userID primitive.ObjectID, exp entity.Experience) (*entity.Profile, error) {
	return m.addExpFn(ctx, userID, exp)
}

func (m *mockProfileRepo) RemoveExperience(ctx context.Context, userID, expID primitive.ObjectID) (*entity.Profile, error) {
	if m.removeExpFn == nil {
		return nil, repository.ErrNotFound
	}
	return m.removeExpFn(ctx, userID, expID)
}

func (m *mockProfileRepo) AddEducation(ctx context.Context, userID primitive.ObjectID, edu entity.Education) (*entity.Profile, error) {
	return m.addEduFn(ctx, userID, edu)
}

func (m *mockProfileRepo) RemoveEducation(ctx context.Context, userID, eduID primitive.ObjectID) (*entity.Profile, error) {
	if m.removeEduFn == nil {
		return nil, repository.ErrNotFound
	}
	return m.removeEduFn(ctx, userID, eduID)
}

// mockPostRepo implements repository.PostRepository.
type mockPostRepo struct {
	createFn        func(ctx context.Context, p *entity.Post) error
	listFn          func(ctx context.Context) ([]entity.Post, error)
	getByIDFn       func(ctx context.Context, id primitive.ObjectID) (*entity.Post, error)
	deleteFn        func(ctx context.Context, id primitive.ObjectID) error
	addLikeFn       func(ctx context.Context, postID primitive.ObjectID, like entity.Like) (*entity.Post, error)
	removeLikeFn    func(ctx context.Context, postID, userID primitive.ObjectID) (*entity.Post, error)
	addCommentFn    func(ctx context.Context, postID primitive.ObjectID, comment entity.Comment) (*entity.Post, error)
	removeCommentFn func(ctx context.Context, postID, commentID primitive.ObjectID) (*entity.Post, error)
}

func (m *mockPostRepo) Create(ctx context.Context, p *entity.Post) error {
	if m.createFn == nil {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		return nil
	}
	return m.createFn(ctx, p)
}

func (m *mockPostRepo) List(ctx context.Context) ([]entity.Post, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	if m.getByIDFn == nil {
		return nil, repository.ErrNotFound
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockPostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockPostRepo) AddLike(ctx context.Context, postID primitive.ObjectID, like entity.Like) (*entity.Post, error) {
	return m.addLikeFn(ctx, postID, like)
}

func (m *mockPostRepo) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*entity.Post, error) {
	return m.removeLikeFn(ctx, postID, userID)
}

func (m *mockPostRepo) AddComment(ctx context.Context, postID primitive.ObjectID, comment entity.Comment) (*entity.Post, error) {
	return m.addCommentFn(ctx, postID, comment)
}

func (m *mockPostRepo) RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) (*entity.Post, error) {
	return m.removeCommentFn(ctx, postID, commentID)
}
