package models

// Subject is a course or topic students can request tutoring for.
// URL is the unique slug used for lookups instead of ID.
type Subject struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Title       string `json:"title" db:"title" example:"Algebra"`
	URL         string `json:"url" db:"url" example:"algebra"`
	Description string `json:"description" db:"description" example:"Intro algebra"`
}
