package domain

import "time"

// Blog mirrors the persisted representation in the blogs table.
type Blog struct {
	ID        int64
	Title     string
	Content   string
	UserID    string
	CreatedAt time.Time
}

// BlogPatch captures a partial update. Nil fields are left unchanged.
// Owner and creation timestamp are immutable and deliberately absent.
type BlogPatch struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the patch carries no changes.
func (p BlogPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// Fields lists the names of the fields the patch would change.
func (p BlogPatch) Fields() []string {
	fields := make([]string, 0, 2)
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Content != nil {
		fields = append(fields, "content")
	}
	return fields
}

// BlogSeed is one entry of the declarative initial-data list loaded at startup.
type BlogSeed struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
