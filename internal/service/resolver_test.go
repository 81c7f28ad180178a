package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/store"
)

type resolverFixture struct {
	resolver *Resolver
	users    *UserService
	profiles *ProfileService
	posts    *PostService
	db       *store.DB
}

func newResolverFixture(t *testing.T) *resolverFixture {
	t.Helper()
	db, logger := newTestDB(t)
	return &resolverFixture{
		resolver: NewResolver(db, logger),
		users:    NewUserService(db, logger),
		profiles: NewProfileService(db, logger),
		posts:    NewPostService(db, logger),
		db:       db,
	}
}

func TestUserFull_JoinsAllRelations(t *testing.T) {
	f := newResolverFixture(t)
	user := mustCreateUser(t, f.users, "Ada")

	profile := validProfile(user.ID)
	profile.MemberTypeID = "business"
	createdProfile, err := f.profiles.Create(context.Background(), profile)
	if err != nil {
		t.Fatalf("setup: profile Create() error = %v", err)
	}
	createdPost, err := f.posts.Create(context.Background(), model.Post{Title: "hello", Content: "world", UserID: user.ID})
	if err != nil {
		t.Fatalf("setup: post Create() error = %v", err)
	}

	full := f.resolver.UserFull(context.Background(), user.ID)

	if full.ID != user.ID {
		t.Errorf("ID = %q, want %q", full.ID, user.ID)
	}
	if full.Profile != createdProfile {
		t.Errorf("Profile = %+v, want %+v", full.Profile, createdProfile)
	}
	if len(full.Posts) != 1 || full.Posts[0] != createdPost {
		t.Errorf("Posts = %+v, want [%+v]", full.Posts, createdPost)
	}
	if full.MemberType.ID != "business" {
		t.Errorf("MemberType.ID = %q, want %q", full.MemberType.ID, "business")
	}
}

func TestUserFull_CountsPosts(t *testing.T) {
	f := newResolverFixture(t)
	user := mustCreateUser(t, f.users, "Ada")

	if _, err := f.profiles.Create(context.Background(), validProfile(user.ID)); err != nil {
		t.Fatalf("setup: profile Create() error = %v", err)
	}
	for _, title := range []string{"one", "two"} {
		if _, err := f.posts.Create(context.Background(), model.Post{Title: title, UserID: user.ID}); err != nil {
			t.Fatalf("setup: post Create() error = %v", err)
		}
	}

	full := f.resolver.UserFull(context.Background(), user.ID)
	if len(full.Posts) != 2 {
		t.Errorf("len(Posts) = %d, want 2", len(full.Posts))
	}
	if full.MemberType.ID != "basic" {
		t.Errorf("MemberType.ID = %q, want %q", full.MemberType.ID, "basic")
	}
}

func TestUserFull_NoProfileYieldsZeroValues(t *testing.T) {
	f := newResolverFixture(t)
	user := mustCreateUser(t, f.users, "Ada")

	full := f.resolver.UserFull(context.Background(), user.ID)

	if full.Profile != (model.Profile{}) {
		t.Errorf("Profile = %+v, want zero value for a user without a profile", full.Profile)
	}
	if full.MemberType != (model.MemberType{}) {
		t.Errorf("MemberType = %+v, want zero value", full.MemberType)
	}
	if full.Posts == nil || len(full.Posts) != 0 {
		t.Errorf("Posts = %v, want empty non-nil slice", full.Posts)
	}
}

func TestUserFull_UnknownUserYieldsEmptyComposite(t *testing.T) {
	f := newResolverFixture(t)

	full := f.resolver.UserFull(context.Background(), "nonexistent")

	if full.ID != "" {
		t.Errorf("ID = %q, want empty shell for unknown user", full.ID)
	}
	if full.Posts == nil {
		t.Error("Posts must be non-nil even in the empty shell")
	}
}

func TestUserFull_DanglingMemberType(t *testing.T) {
	f := newResolverFixture(t)
	user := mustCreateUser(t, f.users, "Ada")

	if _, err := f.profiles.Create(context.Background(), validProfile(user.ID)); err != nil {
		t.Fatalf("setup: profile Create() error = %v", err)
	}

	// Break the foreign key behind the service's back; the resolver must
	// treat the dangling key as absent, never fail.
	if _, err := f.db.MemberTypes.Delete("basic"); err != nil {
		t.Fatalf("setup: member type Delete() error = %v", err)
	}

	full := f.resolver.UserFull(context.Background(), user.ID)
	if full.Profile.UserID != user.ID {
		t.Error("profile join must still succeed")
	}
	if full.MemberType != (model.MemberType{}) {
		t.Errorf("MemberType = %+v, want zero value for a dangling key", full.MemberType)
	}
}

func TestAllUsersFull_OneCompositePerUser(t *testing.T) {
	f := newResolverFixture(t)

	ada := mustCreateUser(t, f.users, "Ada")
	grace := mustCreateUser(t, f.users, "Grace")
	linus := mustCreateUser(t, f.users, "Linus")

	if _, err := f.profiles.Create(context.Background(), validProfile(grace.ID)); err != nil {
		t.Fatalf("setup: profile Create() error = %v", err)
	}
	if _, err := f.posts.Create(context.Background(), model.Post{Title: "hi", UserID: ada.ID}); err != nil {
		t.Fatalf("setup: post Create() error = %v", err)
	}

	full, err := f.resolver.AllUsersFull(context.Background())
	if err != nil {
		t.Fatalf("AllUsersFull() error = %v", err)
	}

	if len(full) != 3 {
		t.Fatalf("len = %d, want one composite per user", len(full))
	}
	// Output order follows the users store's iteration order.
	wantOrder := []string{ada.ID, grace.ID, linus.ID}
	for i, want := range wantOrder {
		if full[i].ID != want {
			t.Errorf("full[%d].ID = %q, want %q", i, full[i].ID, want)
		}
	}

	if len(full[0].Posts) != 1 {
		t.Errorf("ada's Posts = %+v, want one", full[0].Posts)
	}
	if full[1].Profile.UserID != grace.ID || full[1].MemberType.ID != "basic" {
		t.Errorf("grace's composite = %+v, want profile and member type joined", full[1])
	}
	if full[2].Profile != (model.Profile{}) || len(full[2].Posts) != 0 {
		t.Errorf("linus's composite = %+v, want bare user", full[2])
	}
}

func TestAllUsersFull_EmptyStore(t *testing.T) {
	f := newResolverFixture(t)

	full, err := f.resolver.AllUsersFull(context.Background())
	if err != nil {
		t.Fatalf("AllUsersFull() error = %v", err)
	}
	if len(full) != 0 {
		t.Errorf("len = %d, want 0", len(full))
	}
}

func TestAllUsersFull_CancelledContext(t *testing.T) {
	f := newResolverFixture(t)
	mustCreateUser(t, f.users, "Ada")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.resolver.AllUsersFull(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestUserFull_RereadsCurrentState(t *testing.T) {
	f := newResolverFixture(t)
	user := mustCreateUser(t, f.users, "Ada")

	before := f.resolver.UserFull(context.Background(), user.ID)
	if len(before.Posts) != 0 {
		t.Fatalf("Posts = %+v, want empty before any create", before.Posts)
	}

	if _, err := f.posts.Create(context.Background(), model.Post{Title: "new", UserID: user.ID}); err != nil {
		t.Fatalf("post Create() error = %v", err)
	}

	// No caching anywhere: the next call must see the new post.
	after := f.resolver.UserFull(context.Background(), user.ID)
	if len(after.Posts) != 1 {
		t.Errorf("Posts = %+v, want the post created after the first resolve", after.Posts)
	}
}
