package domain

import "time"

type Post struct {
	ID         int64      `json:"id"`
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Excerpt    string     `json:"excerpt,omitempty"`
	Content    string     `json:"content,omitempty"`
	Image      *Image     `json:"image,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	Published  time.Time  `json:"published"`
}
