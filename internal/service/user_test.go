package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"slices"
	"testing"

	"github.com/kmalikov/social-api/internal/apperror"
	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/store"
)

// newTestDB builds a fresh seeded DB and a quiet logger for service tests.
func newTestDB(t *testing.T) (*store.DB, *slog.Logger) {
	t.Helper()
	db := store.New(nil)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return db, logger
}

func newTestUserService(t *testing.T) (*UserService, *store.DB) {
	t.Helper()
	db, logger := newTestDB(t)
	return NewUserService(db, logger), db
}

// mustCreateUser is a setup helper; it fails the test on error.
func mustCreateUser(t *testing.T, svc *UserService, firstName string) model.User {
	t.Helper()
	user, err := svc.Create(context.Background(), firstName, "Tester", firstName+"@example.com")
	if err != nil {
		t.Fatalf("setup: Create() error = %v", err)
	}
	return user
}

func TestUserCreate_Success(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.Create(context.Background(), "Ada", "Lovelace", "ada@example.com")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == "" {
		t.Error("expected user to have an id")
	}
	if user.SubscribedToUserIDs == nil || len(user.SubscribedToUserIDs) != 0 {
		t.Errorf("SubscribedToUserIDs = %v, want empty non-nil list", user.SubscribedToUserIDs)
	}
}

func TestUserCreate_RequiredFields(t *testing.T) {
	svc, _ := newTestUserService(t)

	tests := []struct {
		name                       string
		firstName, lastName, email string
	}{
		{"empty first name", "", "Lovelace", "ada@example.com"},
		{"empty last name", "Ada", "", "ada@example.com"},
		{"empty email", "Ada", "Lovelace", ""},
		{"whitespace-only first name", "   ", "Lovelace", "ada@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.firstName, tt.lastName, tt.email)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestUserUpdate_MergesFields(t *testing.T) {
	svc, _ := newTestUserService(t)
	user := mustCreateUser(t, svc, "Ada")

	newEmail := "countess@example.com"
	updated, err := svc.Update(context.Background(), user.ID, model.UserPatch{Email: &newEmail})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Email != newEmail {
		t.Errorf("Email = %q, want %q", updated.Email, newEmail)
	}
	if updated.FirstName != "Ada" {
		t.Errorf("FirstName = %q, unpatched field must be retained", updated.FirstName)
	}
}

func TestUserUpdate_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Update(context.Background(), "nonexistent", model.UserPatch{})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUserDelete_ReturnsRemovedRecord(t *testing.T) {
	svc, _ := newTestUserService(t)
	user := mustCreateUser(t, svc, "Ada")

	deleted, err := svc.Delete(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.ID != user.ID {
		t.Errorf("Delete() returned %s, want %s", deleted.ID, user.ID)
	}

	if _, ok := svc.GetByID(context.Background(), user.ID); ok {
		t.Error("GetByID() after Delete() should report absent")
	}

	if _, err := svc.Delete(context.Background(), user.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestSubscribe_AppendsToSubscriberList(t *testing.T) {
	svc, _ := newTestUserService(t)
	target := mustCreateUser(t, svc, "Target")
	subscriber := mustCreateUser(t, svc, "Subscriber")

	updated, err := svc.Subscribe(context.Background(), target.ID, subscriber.ID)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	// The subscriber's record gains the target's id — not the other way round.
	if updated.ID != subscriber.ID {
		t.Errorf("Subscribe() returned record %s, want the subscriber %s", updated.ID, subscriber.ID)
	}
	if !slices.Contains(updated.SubscribedToUserIDs, target.ID) {
		t.Errorf("SubscribedToUserIDs = %v, want to contain %s", updated.SubscribedToUserIDs, target.ID)
	}

	fresh, _ := svc.GetByID(context.Background(), target.ID)
	if len(fresh.SubscribedToUserIDs) != 0 {
		t.Errorf("target's list = %v, must stay untouched", fresh.SubscribedToUserIDs)
	}
}

func TestSubscribe_MissingUserFails(t *testing.T) {
	svc, _ := newTestUserService(t)
	user := mustCreateUser(t, svc, "Only")

	if _, err := svc.Subscribe(context.Background(), "nonexistent", user.ID); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("missing target: error = %v, want ErrValidation", err)
	}
	if _, err := svc.Subscribe(context.Background(), user.ID, "nonexistent"); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("missing subscriber: error = %v, want ErrValidation", err)
	}
}

func TestSubscribe_DuplicateEdgeIsAppended(t *testing.T) {
	svc, _ := newTestUserService(t)
	target := mustCreateUser(t, svc, "Target")
	subscriber := mustCreateUser(t, svc, "Subscriber")

	if _, err := svc.Subscribe(context.Background(), target.ID, subscriber.ID); err != nil {
		t.Fatalf("first Subscribe() error = %v", err)
	}
	updated, err := svc.Subscribe(context.Background(), target.ID, subscriber.ID)
	if err != nil {
		t.Fatalf("second Subscribe() error = %v", err)
	}

	// Subscribe does not dedupe: the second call appends a second edge.
	if len(updated.SubscribedToUserIDs) != 2 {
		t.Errorf("SubscribedToUserIDs = %v, want two entries", updated.SubscribedToUserIDs)
	}
}

func TestUnsubscribe_RoundTripsTheEdgeSet(t *testing.T) {
	svc, _ := newTestUserService(t)
	target := mustCreateUser(t, svc, "Target")
	subscriber := mustCreateUser(t, svc, "Subscriber")

	if _, err := svc.Subscribe(context.Background(), target.ID, subscriber.ID); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	updated, err := svc.Unsubscribe(context.Background(), target.ID, subscriber.ID)
	if err != nil {
		t.Fatalf("Unsubscribe() error = %v", err)
	}
	if len(updated.SubscribedToUserIDs) != 0 {
		t.Errorf("SubscribedToUserIDs = %v, want the edge set back to empty", updated.SubscribedToUserIDs)
	}
}

func TestUnsubscribe_MissingEdgeFailsWithoutMutation(t *testing.T) {
	svc, _ := newTestUserService(t)
	target := mustCreateUser(t, svc, "Target")
	other := mustCreateUser(t, svc, "Other")
	subscriber := mustCreateUser(t, svc, "Subscriber")

	if _, err := svc.Subscribe(context.Background(), other.ID, subscriber.ID); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	// Both users exist but there is no subscriber -> target edge.
	_, err := svc.Unsubscribe(context.Background(), target.ID, subscriber.ID)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}

	fresh, _ := svc.GetByID(context.Background(), subscriber.ID)
	if len(fresh.SubscribedToUserIDs) != 1 || fresh.SubscribedToUserIDs[0] != other.ID {
		t.Errorf("list = %v, failed unsubscribe must not mutate state", fresh.SubscribedToUserIDs)
	}
}

func TestUnsubscribe_RemovesAllOccurrences(t *testing.T) {
	svc, _ := newTestUserService(t)
	target := mustCreateUser(t, svc, "Target")
	subscriber := mustCreateUser(t, svc, "Subscriber")

	for i := 0; i < 2; i++ {
		if _, err := svc.Subscribe(context.Background(), target.ID, subscriber.ID); err != nil {
			t.Fatalf("Subscribe() error = %v", err)
		}
	}

	updated, err := svc.Unsubscribe(context.Background(), target.ID, subscriber.ID)
	if err != nil {
		t.Fatalf("Unsubscribe() error = %v", err)
	}
	if len(updated.SubscribedToUserIDs) != 0 {
		t.Errorf("SubscribedToUserIDs = %v, want all duplicate edges removed", updated.SubscribedToUserIDs)
	}
}

func TestUserDelete_LeavesDanglingEdges(t *testing.T) {
	svc, _ := newTestUserService(t)
	target := mustCreateUser(t, svc, "Target")
	subscriber := mustCreateUser(t, svc, "Subscriber")

	if _, err := svc.Subscribe(context.Background(), target.ID, subscriber.ID); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if _, err := svc.Delete(context.Background(), target.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Deleting a user does not prune other users' subscription lists; the
	// stale entry stays and simply dereferences to absent.
	fresh, _ := svc.GetByID(context.Background(), subscriber.ID)
	if !slices.Contains(fresh.SubscribedToUserIDs, target.ID) {
		t.Errorf("list = %v, want the dangling edge %s kept", fresh.SubscribedToUserIDs, target.ID)
	}
	if _, ok := svc.GetByID(context.Background(), target.ID); ok {
		t.Error("deleted user must dereference to absent")
	}
}
