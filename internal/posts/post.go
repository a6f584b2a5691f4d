package posts

import "errors"

var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID      int    `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
}

// PostUpdate is a partial update, nil or empty fields are left untouched.
type PostUpdate struct {
	Title   *string
	Content *string
}

func (u PostUpdate) applyTo(post *Post) (changed bool) {
	if u.Title != nil && *u.Title != "" && *u.Title != post.Title {
		post.Title = *u.Title
		changed = true
	}
	if u.Content != nil && *u.Content != "" && *u.Content != post.Content {
		post.Content = *u.Content
		changed = true
	}
	return changed
}
