package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kmalikov/social-api/internal/apperror"
	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/store"
)

// PostService handles posts.
type PostService struct {
	db     *store.DB
	logger *slog.Logger
}

// NewPostService creates a new PostService.
func NewPostService(db *store.DB, logger *slog.Logger) *PostService {
	return &PostService{db: db, logger: logger}
}

// Create validates and stores a new post. The author must exist; a user may
// have any number of posts.
func (s *PostService) Create(ctx context.Context, post model.Post) (model.Post, error) {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return model.Post{}, apperror.ValidationFailed("title", "post title is required")
	}
	if _, ok := s.db.Users.GetByID(post.UserID); !ok {
		return model.Post{}, apperror.ValidationFailed("userId",
			"user not found with id "+post.UserID)
	}

	created := s.db.Posts.Create(post)

	s.logger.Info("post created",
		slog.String("id", created.ID),
		slog.String("userId", created.UserID),
	)
	return created, nil
}

// GetByID returns the post with the given id; the second result reports
// absence.
func (s *PostService) GetByID(ctx context.Context, id string) (model.Post, bool) {
	return s.db.Posts.GetByID(id)
}

// List returns all posts in creation order.
func (s *PostService) List(ctx context.Context) []model.Post {
	return s.db.Posts.List()
}

// ListByUser returns all posts authored by the given user, in creation
// order. An unknown or deleted user id simply yields an empty list.
func (s *PostService) ListByUser(ctx context.Context, userID string) []model.Post {
	return s.db.Posts.FindMany(func(p model.Post) bool { return p.UserID == userID })
}

// Update applies a partial update to a post. Fails with NotFound if the id
// does not exist.
func (s *PostService) Update(ctx context.Context, id string, patch model.PostPatch) (model.Post, error) {
	updated, err := s.db.Posts.Change(id, patch.Apply)
	if err != nil {
		return model.Post{}, err
	}

	s.logger.Info("post updated", slog.String("id", id))
	return updated, nil
}

// Delete removes a post and returns the removed record. Fails with NotFound
// if the id does not exist.
func (s *PostService) Delete(ctx context.Context, id string) (model.Post, error) {
	deleted, err := s.db.Posts.Delete(id)
	if err != nil {
		return model.Post{}, err
	}

	s.logger.Info("post deleted", slog.String("id", id))
	return deleted, nil
}
