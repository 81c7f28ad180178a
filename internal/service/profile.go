package service

import (
	"context"
	"log/slog"

	"github.com/kmalikov/social-api/internal/apperror"
	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/store"
)

// ProfileService handles user profiles. This is where the one-profile-per-
// user rule and the foreign-key checks live — the store underneath is
// generic and enforces neither.
type ProfileService struct {
	db     *store.DB
	logger *slog.Logger
}

// NewProfileService creates a new ProfileService.
func NewProfileService(db *store.DB, logger *slog.Logger) *ProfileService {
	return &ProfileService{db: db, logger: logger}
}

// Create validates and stores a new profile. The member type and the user
// must both exist, and the user must not already have a profile.
func (s *ProfileService) Create(ctx context.Context, profile model.Profile) (model.Profile, error) {
	if _, ok := s.db.MemberTypes.GetByID(profile.MemberTypeID); !ok {
		return model.Profile{}, apperror.ValidationFailed("memberTypeId",
			"member type not found with id "+profile.MemberTypeID)
	}
	if _, ok := s.db.Users.GetByID(profile.UserID); !ok {
		return model.Profile{}, apperror.ValidationFailed("userId",
			"user not found with id "+profile.UserID)
	}
	if _, ok := s.db.Profiles.FindOne(func(p model.Profile) bool {
		return p.UserID == profile.UserID
	}); ok {
		return model.Profile{}, apperror.ValidationFailed("userId",
			"user "+profile.UserID+" already has a profile")
	}

	created := s.db.Profiles.Create(profile)

	s.logger.Info("profile created",
		slog.String("id", created.ID),
		slog.String("userId", created.UserID),
		slog.String("memberTypeId", created.MemberTypeID),
	)
	return created, nil
}

// GetByID returns the profile with the given id; the second result reports
// absence.
func (s *ProfileService) GetByID(ctx context.Context, id string) (model.Profile, bool) {
	return s.db.Profiles.GetByID(id)
}

// List returns all profiles in creation order.
func (s *ProfileService) List(ctx context.Context) []model.Profile {
	return s.db.Profiles.List()
}

// Update applies a partial update to a profile. A patched member type id
// must reference an existing member type. Fails with NotFound if the profile
// does not exist.
func (s *ProfileService) Update(ctx context.Context, id string, patch model.ProfilePatch) (model.Profile, error) {
	if patch.MemberTypeID != nil {
		if _, ok := s.db.MemberTypes.GetByID(*patch.MemberTypeID); !ok {
			return model.Profile{}, apperror.ValidationFailed("memberTypeId",
				"member type not found with id "+*patch.MemberTypeID)
		}
	}

	updated, err := s.db.Profiles.Change(id, patch.Apply)
	if err != nil {
		return model.Profile{}, err
	}

	s.logger.Info("profile updated", slog.String("id", id))
	return updated, nil
}

// Delete removes a profile and returns the removed record. Fails with
// NotFound if the id does not exist.
func (s *ProfileService) Delete(ctx context.Context, id string) (model.Profile, error) {
	deleted, err := s.db.Profiles.Delete(id)
	if err != nil {
		return model.Profile{}, err
	}

	s.logger.Info("profile deleted", slog.String("id", id))
	return deleted, nil
}
