package service

import (
	"context"
	"log/slog"

	"github.com/kmalikov/social-api/internal/apperror"
	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/store"
)

// MemberTypeService handles the seeded subscription plans. The set is
// closed: plans can be read and tuned, never created or deleted at runtime.
type MemberTypeService struct {
	db     *store.DB
	logger *slog.Logger
}

// NewMemberTypeService creates a new MemberTypeService.
func NewMemberTypeService(db *store.DB, logger *slog.Logger) *MemberTypeService {
	return &MemberTypeService{db: db, logger: logger}
}

// List returns all member types in seed order.
func (s *MemberTypeService) List(ctx context.Context) []model.MemberType {
	return s.db.MemberTypes.List()
}

// GetByID returns the member type with the given plan id; the second result
// reports absence.
func (s *MemberTypeService) GetByID(ctx context.Context, id string) (model.MemberType, bool) {
	return s.db.MemberTypes.GetByID(id)
}

// Update applies a partial update to a member type. Fails with NotFound if
// the plan id does not exist.
func (s *MemberTypeService) Update(ctx context.Context, id string, patch model.MemberTypePatch) (model.MemberType, error) {
	if patch.Discount != nil && (*patch.Discount < 0 || *patch.Discount > 100) {
		return model.MemberType{}, apperror.ValidationFailed("discount",
			"discount must be between 0 and 100")
	}
	if patch.MonthPostsLimit != nil && *patch.MonthPostsLimit < 0 {
		return model.MemberType{}, apperror.ValidationFailed("monthPostsLimit",
			"monthly post limit must not be negative")
	}

	updated, err := s.db.MemberTypes.Change(id, patch.Apply)
	if err != nil {
		return model.MemberType{}, err
	}

	s.logger.Info("member type updated", slog.String("id", id))
	return updated, nil
}
