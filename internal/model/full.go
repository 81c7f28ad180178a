package model

// UserFull is the resolver-assembled composite view of a user: the user's
// own fields plus the joined profile, posts, and member type, so callers get
// everything in one shot instead of re-resolving foreign keys themselves.
//
// Absent relations are zero values: a user without a profile carries a zero
// Profile and a zero MemberType, and Posts is always non-nil (possibly
// empty). Zero-value structs are this API's rendition of "empty object".
type UserFull struct {
	User
	Profile    Profile    `json:"profile"`
	Posts      []Post     `json:"posts"`
	MemberType MemberType `json:"memberType"`
}
