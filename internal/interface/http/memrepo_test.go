package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

// In-memory repository fakes mirroring the mongo implementations' semantics:
// unique email, one profile per user, front-inserted embedded entries.

type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.Date.IsZero() {
		u.Date = time.Now().UTC()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[primitive.ObjectID]*entity.Profile // keyed by owner user id
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[primitive.ObjectID]*entity.Profile{}}
}

func (r *memProfileRepo) GetByUser(_ context.Context, userID primitive.ObjectID) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) List(_ context.Context) ([]entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProfileRepo) Upsert(_ context.Context, userID primitive.ObjectID, patch *repository.ProfilePatch) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		p = &entity.Profile{
			ID:         primitive.NewObjectID(),
			UserID:     userID,
			Experience: []entity.Experience{},
			Education:  []entity.Education{},
			Date:       time.Now().UTC(),
		}
		r.profiles[userID] = p
	}
	p.Status = patch.Status
	p.Skills = patch.Skills
	if patch.Company != nil {
		p.Company = *patch.Company
	}
	if patch.Website != nil {
		p.Website = *patch.Website
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.GithubUsername != nil {
		p.GithubUsername = *patch.GithubUsername
	}
	if patch.Social != nil {
		p.Social = patch.Social
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.profiles, userID)
	return nil
}

func (r *memProfileRepo) AddExperience(_ context.Context, userID primitive.ObjectID, exp entity.Experience) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if exp.ID.IsZero() {
		exp.ID = primitive.NewObjectID()
	}
	p.Experience = append([]entity.Experience{exp}, p.Experience...)
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) RemoveExperience(_ context.Context, userID, expID primitive.ObjectID) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for i, e := range p.Experience {
		if e.ID == expID {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memProfileRepo) AddEducation(_ context.Context, userID primitive.ObjectID, edu entity.Education) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if edu.ID.IsZero() {
		edu.ID = primitive.NewObjectID()
	}
	p.Education = append([]entity.Education{edu}, p.Education...)
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) RemoveEducation(_ context.Context, userID, eduID primitive.ObjectID) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for i, e := range p.Education {
		if e.ID == eduID {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memPostRepo struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]*entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[primitive.ObjectID]*entity.Post{}}
}

func (r *memPostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *memPostRepo) List(_ context.Context) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memPostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memPostRepo) AddLike(_ context.Context, postID primitive.ObjectID, like entity.Like) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if like.ID.IsZero() {
		like.ID = primitive.NewObjectID()
	}
	p.Likes = append([]entity.Like{like}, p.Likes...)
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			break
		}
	}
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) AddComment(_ context.Context, postID primitive.ObjectID, comment entity.Comment) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	if comment.Date.IsZero() {
		comment.Date = time.Now().UTC()
	}
	p.Comments = append([]entity.Comment{comment}, p.Comments...)
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) RemoveComment(_ context.Context, postID, commentID primitive.ObjectID) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for i, c := range p.Comments {
		if c.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

var (
	_ repository.UserRepository    = (*memUserRepo)(nil)
	_ repository.ProfileRepository = (*memProfileRepo)(nil)
	_ repository.PostRepository    = (*memPostRepo)(nil)
)
