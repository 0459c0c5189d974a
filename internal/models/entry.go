package models

import "time"

// Entry is a single journal record for one achievement/moment.
type Entry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Text      string    `json:"text"`
	Media     []string  `json:"media,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	IsPrivate bool      `json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
}

// EntryDraft holds the caller-supplied fields for a new entry. The id and
// both timestamps are assigned at creation time.
type EntryDraft struct {
	Text      string
	Media     []string
	Tags      []string
	IsPrivate bool
}

// EntryUpdate is a partial-field update. Nil fields are left untouched.
type EntryUpdate struct {
	Text      *string
	Media     *[]string
	Tags      *[]string
	IsPrivate *bool
}

// IsZero reports whether the update carries no changes.
func (u EntryUpdate) IsZero() bool {
	return u.Text == nil && u.Media == nil && u.Tags == nil && u.IsPrivate == nil
}

// Apply copies the set fields of the update onto the entry. Tags are
// deduplicated so an update cannot introduce duplicates within one entry.
func (e *Entry) Apply(u EntryUpdate) {
	if u.Text != nil {
		e.Text = *u.Text
	}
	if u.Media != nil {
		e.Media = *u.Media
	}
	if u.Tags != nil {
		e.Tags = DedupeTags(*u.Tags)
	}
	if u.IsPrivate != nil {
		e.IsPrivate = *u.IsPrivate
	}
}

// HasTag reports whether the entry already carries the given tag.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends a tag unless the entry already has it. Returns true if
// the tag was added.
func (e *Entry) AddTag(tag string) bool {
	if tag == "" || e.HasTag(tag) {
		return false
	}
	e.Tags = append(e.Tags, tag)
	return true
}

// DedupeTags returns the tags with duplicates and empty labels removed,
// preserving first-seen order.
func DedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
