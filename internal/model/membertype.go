package model

// MemberType is a subscription plan. Unlike the other entities its id is not
// generated — it comes from a small fixed set seeded at startup (see
// store.DefaultMemberTypes). Plans can be tuned via PATCH but never created
// or deleted at runtime.
type MemberType struct {
	ID              string `json:"id"`
	Discount        int    `json:"discount"`
	MonthPostsLimit int    `json:"monthPostsLimit"`
}

// EntityID returns the member type's plan identifier.
func (m MemberType) EntityID() string { return m.ID }

// WithEntityID returns a copy of the member type with the given id set.
func (m MemberType) WithEntityID(id string) MemberType {
	m.ID = id
	return m
}

// MemberTypePatch describes a partial update to a MemberType.
type MemberTypePatch struct {
	Discount        *int `json:"discount"`
	MonthPostsLimit *int `json:"monthPostsLimit"`
}

// Apply merges the patch into the member type and returns the result.
func (mp MemberTypePatch) Apply(m MemberType) MemberType {
	if mp.Discount != nil {
		m.Discount = *mp.Discount
	}
	if mp.MonthPostsLimit != nil {
		m.MonthPostsLimit = *mp.MonthPostsLimit
	}
	return m
}
