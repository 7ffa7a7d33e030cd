package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/pkg/github"
)

// ProfileService owns profile CRUD, embedded experience/education entries,
// account deletion and the GitHub repo proxy.
type ProfileService struct {
	Profiles repository.ProfileRepository
	Users    repository.UserRepository
	Github   *github.Client
	Logger   *logrus.Logger
}

func NewProfileService(profiles repository.ProfileRepository, users repository.UserRepository, gh *github.Client, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Profiles: profiles, Users: users, Github: gh, Logger: logger}
}

// UpsertProfileInput is the sparse profile patch as received from the client.
// Nil pointers mean "leave the stored value alone"; Skills is the raw
// comma-separated string.
type UpsertProfileInput struct {
	Status         string
	Skills         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

// SplitSkills turns the comma-separated skills string into a trimmed,
// ordered list, dropping empty segments.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// Upsert updates the caller's profile in place, creating it when absent.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in UpsertProfileInput) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	social := &entity.Social{}
	if in.Youtube != nil {
		social.Youtube = *in.Youtube
	}
	if in.Twitter != nil {
		social.Twitter = *in.Twitter
	}
	if in.Facebook != nil {
		social.Facebook = *in.Facebook
	}
	if in.Linkedin != nil {
		social.Linkedin = *in.Linkedin
	}
	if in.Instagram != nil {
		social.Instagram = *in.Instagram
	}

	patch := &repository.ProfilePatch{
		Status:         in.Status,
		Skills:         SplitSkills(in.Skills),
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Social:         social,
	}
	return s.Profiles.Upsert(ctx, oid, patch)
}

// GetOwn returns the caller's profile joined with the owner's name/avatar.
func (s *ProfileService) GetOwn(ctx context.Context, userID string) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.getJoined(ctx, oid)
}

// GetByUser returns any user's profile; malformed ids read as not found.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.getJoined(ctx, oid)
}

func (s *ProfileService) getJoined(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.attachOwners(ctx, []*entity.Profile{p})
	return p, nil
}

// List returns all profiles joined with their owners' name/avatar.
func (s *ProfileService) List(ctx context.Context) ([]entity.Profile, error) {
	profiles, err := s.Profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]*entity.Profile, len(profiles))
	for i := range profiles {
		refs[i] = &profiles[i]
	}
	s.attachOwners(ctx, refs)
	return profiles, nil
}

// attachOwners populates the user name/avatar projection. Profiles whose
// owner record is gone (orphans after account deletion) keep a nil Owner.
func (s *ProfileService) attachOwners(ctx context.Context, profiles []*entity.Profile) {
	ids := make([]primitive.ObjectID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	users, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		s.Logger.WithError(err).Warn("profile owner lookup failed")
		return
	}
	byID := make(map[primitive.ObjectID]entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, p := range profiles {
		if u, ok := byID[p.UserID]; ok {
			p.Owner = &entity.Owner{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
		}
	}
}

// DeleteAccount removes the caller's profile and user record. The two deletes
// are not atomic; posts and comments are intentionally left orphaned.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	if err := s.Profiles.DeleteByUser(ctx, oid); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err := s.Users.Delete(ctx, oid); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func (s *ProfileService) AddExperience(ctx context.Context, userID string, exp entity.Experience) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	p, err := s.Profiles.AddExperience(ctx, oid, exp)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	eid, err := primitive.ObjectIDFromHex(expID)
	if err != nil {
		return nil, ErrNotFound
	}
	p, err := s.Profiles.RemoveExperience(ctx, oid, eid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProfileService) AddEducation(ctx context.Context, userID string, edu entity.Education) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	p, err := s.Profiles.AddEducation(ctx, oid, edu)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	eid, err := primitive.ObjectIDFromHex(eduID)
	if err != nil {
		return nil, ErrNotFound
	}
	p, err := s.Profiles.RemoveEducation(ctx, oid, eid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// GithubRepos proxies the upstream repo listing; any upstream failure that is
// not a transport error reads as not found.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) (json.RawMessage, error) {
	repos, err := s.Github.ListRepos(ctx, username)
	if errors.Is(err, github.ErrNoProfile) {
		return nil, ErrNotFound
	}
	return repos, err
}
