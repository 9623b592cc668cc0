package entity

// Blog is a single bookmarked blog entry.
// ID is assigned by the store on insert and never changes afterwards.
type Blog struct {
	ID     string
	Title  string
	Author string
	URL    string
	Likes  int
}

// BlogPatch carries the fields of an update; nil fields are left untouched.
type BlogPatch struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

// IsEmpty reports whether the patch changes nothing.
func (p BlogPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.URL == nil && p.Likes == nil
}

// Apply writes the non-nil fields of p onto b.
func (p BlogPatch) Apply(b *Blog) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.URL != nil {
		b.URL = *p.URL
	}
	if p.Likes != nil {
		b.Likes = *p.Likes
	}
}
