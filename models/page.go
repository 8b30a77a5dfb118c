package models

import "time"

// Page is an editable content page. Like [User.CreatedAt], CreatedAt is an
// input of the identity token and is treated as immutable.
type Page struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Page model.
func (p Page) TableName() string {
	return "pages"
}

// Fields are the submitted values of an edit form, keyed by field name.
type Fields map[string]string

// Clone returns an independent copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
