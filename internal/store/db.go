package store

import "github.com/kmalikov/social-api/internal/model"

// DefaultMemberTypes is the seed set of subscription plans. Member-type ids
// are plain strings from this closed set, never generated.
var DefaultMemberTypes = []model.MemberType{
	{ID: "basic", Discount: 0, MonthPostsLimit: 20},
	{ID: "business", Discount: 5, MonthPostsLimit: 100},
}

// DB bundles the four entity collections for the process lifetime. One DB is
// created at startup and injected into the services — there is no ambient
// global state. Each collection guards itself; DB adds no locking of its own
// and provides no cross-collection primitives (joins are the resolver's job).
type DB struct {
	Users       *EntityStore[model.User]
	Profiles    *EntityStore[model.Profile]
	MemberTypes *EntityStore[model.MemberType]
	Posts       *EntityStore[model.Post]
}

// New creates an empty DB seeded with the given member types. A nil seed
// uses DefaultMemberTypes.
func New(seed []model.MemberType) *DB {
	db := &DB{
		Users:       NewEntityStore[model.User]("user"),
		Profiles:    NewEntityStore[model.Profile]("profile"),
		MemberTypes: NewEntityStore[model.MemberType]("member type"),
		Posts:       NewEntityStore[model.Post]("post"),
	}
	if seed == nil {
		seed = DefaultMemberTypes
	}
	for _, mt := range seed {
		db.MemberTypes.Put(mt)
	}
	return db
}
