package model

// Profile holds the personal details attached to a user account.
//
// UserID is a foreign key to User; a user has at most one profile, a rule
// enforced by the profiles service at creation time, not by the store.
// MemberTypeID references one of the seeded member types. Both keys are
// resolved by explicit lookup on read — a dangling key yields an absent
// join result, never an error.
type Profile struct {
	ID           string `json:"id"`
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int    `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	UserID       string `json:"userId"`
	MemberTypeID string `json:"memberTypeId"`
}

// EntityID returns the profile's unique identifier.
func (p Profile) EntityID() string { return p.ID }

// WithEntityID returns a copy of the profile with the given id set.
func (p Profile) WithEntityID(id string) Profile {
	p.ID = id
	return p
}

// ProfilePatch describes a partial update to a Profile. Nil fields are left
// untouched. UserID is not patchable: a profile stays with the user it was
// created for.
type ProfilePatch struct {
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *int    `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	MemberTypeID *string `json:"memberTypeId"`
}

// Apply merges the patch into the profile and returns the result.
func (pp ProfilePatch) Apply(p Profile) Profile {
	if pp.Avatar != nil {
		p.Avatar = *pp.Avatar
	}
	if pp.Sex != nil {
		p.Sex = *pp.Sex
	}
	if pp.Birthday != nil {
		p.Birthday = *pp.Birthday
	}
	if pp.Country != nil {
		p.Country = *pp.Country
	}
	if pp.Street != nil {
		p.Street = *pp.Street
	}
	if pp.City != nil {
		p.City = *pp.City
	}
	if pp.MemberTypeID != nil {
		p.MemberTypeID = *pp.MemberTypeID
	}
	return p
}
