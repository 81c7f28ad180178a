package model

// Post is a piece of content published by a user. UserID is a foreign key to
// User with many-posts-per-user cardinality.
type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// EntityID returns the post's unique identifier.
func (p Post) EntityID() string { return p.ID }

// WithEntityID returns a copy of the post with the given id set.
func (p Post) WithEntityID(id string) Post {
	p.ID = id
	return p
}

// PostPatch describes a partial update to a Post. Nil fields are left
// untouched; UserID is not patchable.
type PostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Apply merges the patch into the post and returns the result.
func (pp PostPatch) Apply(p Post) Post {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Content != nil {
		p.Content = *pp.Content
	}
	return p
}
