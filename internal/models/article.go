package models

import "time"

// Article is a single submitted entry. AuthorEmail is filled on reads
// from the join with users; it is not a column of the articles table.
type Article struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    string    `json:"category"`
	SubmittedBy int       `json:"submitted_by"`
	AuthorEmail string    `json:"author_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
