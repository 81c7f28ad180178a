// Package model defines the data structures used throughout the application.
package model

// User represents a registered user account.
//
// SubscribedToUserIDs is the adjacency list of the subscription graph: the
// ids of users this record is subscribed to. The list is ordered and the
// store does not deduplicate it — only the subscribe/unsubscribe operations
// ever touch it. Entries may dangle after a user is deleted; traversals must
// treat every entry as an optional lookup.
type User struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	SubscribedToUserIDs []string `json:"subscribedToUserIds"`
}

// EntityID returns the user's unique identifier.
func (u User) EntityID() string { return u.ID }

// WithEntityID returns a copy of the user with the given id set.
func (u User) WithEntityID(id string) User {
	u.ID = id
	return u
}

// UserPatch describes a partial update to a User. Nil fields are left
// untouched. There is intentionally no field for the subscription list —
// the graph is mutated only through Subscribe/Unsubscribe.
type UserPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// Apply merges the patch into the user and returns the result.
func (p UserPatch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}
