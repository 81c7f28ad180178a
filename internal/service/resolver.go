package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/store"
)

// Resolver assembles composite "full" user views. The store has no
// cross-collection join primitive, so the resolver performs the joins a
// relational engine would: one profile lookup, one posts scan, and a
// conditional member-type lookup per user.
//
// Every call re-reads current store state — no caching, no memoized joins.
// All lookups are reads, so per-user bundles are safe to run concurrently.
type Resolver struct {
	db     *store.DB
	logger *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(db *store.DB, logger *slog.Logger) *Resolver {
	return &Resolver{db: db, logger: logger}
}

// UserFull returns the composite view for one user: the user's own fields
// plus joined profile, posts, and member type.
//
// Reads are lenient throughout: an unknown user id yields a zero-value
// composite rather than an error, a user without a profile gets zero-value
// profile and member type, and a profile whose member type id dangles gets a
// zero-value member type. Posts is always non-nil.
func (r *Resolver) UserFull(ctx context.Context, id string) model.UserFull {
	user, ok := r.db.Users.GetByID(id)
	if !ok {
		return model.UserFull{Posts: []model.Post{}}
	}
	return r.assemble(user)
}

// AllUsersFull returns one composite per user, in the users store's
// iteration order. Each user's join bundle is independent, so the bundles
// run concurrently, one goroutine per user, writing into a preallocated
// slice slot. The only error possible is context cancellation.
func (r *Resolver) AllUsersFull(ctx context.Context) ([]model.UserFull, error) {
	users := r.db.Users.List()
	full := make([]model.UserFull, len(users))

	g, ctx := errgroup.WithContext(ctx)
	for i, user := range users {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			full[i] = r.assemble(user)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return full, nil
}

// assemble performs the three joins for one user. Within a bundle only the
// member-type lookup has a real dependency: it needs the profile's member
// type id first.
func (r *Resolver) assemble(user model.User) model.UserFull {
	full := model.UserFull{User: user}

	profile, ok := r.db.Profiles.FindOne(func(p model.Profile) bool {
		return p.UserID == user.ID
	})
	if ok {
		full.Profile = profile
		if mt, ok := r.db.MemberTypes.GetByID(profile.MemberTypeID); ok {
			full.MemberType = mt
		}
	}

	full.Posts = r.db.Posts.FindMany(func(p model.Post) bool {
		return p.UserID == user.ID
	})
	return full
}
