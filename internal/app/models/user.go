package models

import "strings"

// User is either a student or a professor; the table has no role column.
type User struct {
	ID                int64   `json:"id" db:"id" example:"1"`
	Name              string  `json:"name" db:"name" example:"Ivana"`
	Surname           string  `json:"surname" db:"surname" example:"Horvat"`
	Email             string  `json:"email" db:"email" example:"ivana.horvat@fer.hr"`
	Password          string  `json:"-" db:"password"`
	ProfilePicture    string  `json:"profilePicture" db:"profile_picture" example:"https://cdn.example.com/ivana.png"`
	Subjects          *string `json:"subjects,omitempty" db:"subjects" example:"algebra,physics"`
	InstructionsCount *int    `json:"instructionsCount,omitempty" db:"instructions_count" example:"4"`
}

// Teaches reports whether the user is a professor for the subject slug.
// Membership is substring containment over the free-text subjects column,
// so "chem" matches a professor whose subjects are "biochem".
func (u *User) Teaches(subjectURL string) bool {
	if u == nil || u.Subjects == nil {
		return false
	}
	return strings.Contains(*u.Subjects, subjectURL)
}
