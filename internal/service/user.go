// Package service contains the business logic layer of the application.
//
// Handlers parse HTTP and map errors to status codes; services enforce the
// domain rules (required fields, foreign-key targets, profile uniqueness,
// subscription edges) and orchestrate the stores. The stores themselves stay
// generic and rule-free, so every cross-entity check lives here.
package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/kmalikov/social-api/internal/apperror"
	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/store"
)

// UserService handles user accounts and the subscription graph between them.
type UserService struct {
	db     *store.DB
	logger *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(db *store.DB, logger *slog.Logger) *UserService {
	return &UserService{db: db, logger: logger}
}

// Create validates and stores a new user. The subscription list starts empty.
func (s *UserService) Create(ctx context.Context, firstName, lastName, email string) (model.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" {
		return model.User{}, apperror.ValidationFailed("firstName", "first name is required")
	}
	if lastName == "" {
		return model.User{}, apperror.ValidationFailed("lastName", "last name is required")
	}
	if email == "" {
		return model.User{}, apperror.ValidationFailed("email", "email is required")
	}

	user := s.db.Users.Create(model.User{
		FirstName:           firstName,
		LastName:            lastName,
		Email:               email,
		SubscribedToUserIDs: []string{},
	})

	s.logger.Info("user created",
		slog.String("id", user.ID),
		slog.String("email", user.Email),
	)
	return user, nil
}

// GetByID returns the user with the given id. A miss is not an error: the
// second result reports absence and the caller decides how strict to be.
func (s *UserService) GetByID(ctx context.Context, id string) (model.User, bool) {
	return s.db.Users.GetByID(id)
}

// List returns all users in creation order.
func (s *UserService) List(ctx context.Context) []model.User {
	return s.db.Users.List()
}

// Update applies a partial update to a user. Fails with NotFound if the id
// does not exist. The subscription list cannot be changed this way.
func (s *UserService) Update(ctx context.Context, id string, patch model.UserPatch) (model.User, error) {
	updated, err := s.db.Users.Change(id, patch.Apply)
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("user updated", slog.String("id", id))
	return updated, nil
}

// Delete removes a user and returns the removed record. Fails with NotFound
// if the id does not exist.
//
// Deletion cascades nothing: the user's profile and posts stay in their
// stores, and other users keep the deleted id in their subscription lists.
// All of those dangling references resolve to absent on later reads.
func (s *UserService) Delete(ctx context.Context, id string) (model.User, error) {
	deleted, err := s.db.Users.Delete(id)
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("user deleted", slog.String("id", id))
	return deleted, nil
}

// Subscribe adds targetID to the subscriber's subscription list and returns
// the updated subscriber record. Both users must exist. Duplicate edges are
// not rejected: subscribing twice to the same user appends a second entry.
func (s *UserService) Subscribe(ctx context.Context, targetID, subscriberID string) (model.User, error) {
	if _, ok := s.db.Users.GetByID(targetID); !ok {
		return model.User{}, apperror.ValidationFailed("id", "user not found with id "+targetID)
	}
	if _, ok := s.db.Users.GetByID(subscriberID); !ok {
		return model.User{}, apperror.ValidationFailed("userId", "user not found with id "+subscriberID)
	}

	updated, err := s.db.Users.Change(subscriberID, func(u model.User) model.User {
		// Copy before appending so stored records never share backing arrays
		// with values handed out earlier.
		u.SubscribedToUserIDs = append(slices.Clone(u.SubscribedToUserIDs), targetID)
		return u
	})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("user subscribed",
		slog.String("subscriberId", subscriberID),
		slog.String("targetId", targetID),
	)
	return updated, nil
}

// Unsubscribe removes targetID from the subscriber's subscription list and
// returns the updated subscriber record. Both users must exist, and the edge
// must exist — unsubscribing from a user the subscriber never followed fails
// without mutating anything. Every occurrence of the edge is removed.
func (s *UserService) Unsubscribe(ctx context.Context, targetID, subscriberID string) (model.User, error) {
	if _, ok := s.db.Users.GetByID(targetID); !ok {
		return model.User{}, apperror.ValidationFailed("id", "user not found with id "+targetID)
	}
	subscriber, ok := s.db.Users.GetByID(subscriberID)
	if !ok {
		return model.User{}, apperror.ValidationFailed("userId", "user not found with id "+subscriberID)
	}
	if !slices.Contains(subscriber.SubscribedToUserIDs, targetID) {
		return model.User{}, apperror.ValidationFailed("userId",
			"user "+subscriberID+" is not subscribed to "+targetID)
	}

	updated, err := s.db.Users.Change(subscriberID, func(u model.User) model.User {
		kept := make([]string, 0, len(u.SubscribedToUserIDs))
		for _, id := range u.SubscribedToUserIDs {
			if id != targetID {
				kept = append(kept, id)
			}
		}
		u.SubscribedToUserIDs = kept
		return u
	})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("user unsubscribed",
		slog.String("subscriberId", subscriberID),
		slog.String("targetId", targetID),
	)
	return updated, nil
}
