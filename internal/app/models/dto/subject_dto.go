package dto

import "github.com/yigit/unitutor/internal/app/models"

// CreateSubjectRequest is the body of POST /api/subject
type CreateSubjectRequest struct {
	Title       string `json:"title" binding:"required" example:"Algebra"`
	URL         string `json:"url" binding:"required" example:"algebra"`
	Description string `json:"description" binding:"required" example:"Intro algebra"`
}

// SubjectResponse is the public projection of a subject
type SubjectResponse struct {
	Title       string `json:"title" example:"Algebra"`
	URL         string `json:"url" example:"algebra"`
	Description string `json:"description" example:"Intro algebra"`
}

// ProfessorResponse is the projection of a user who teaches a subject
type ProfessorResponse struct {
	ID                int64   `json:"_id" example:"2"`
	Name              string  `json:"name" example:"Ivana"`
	Surname           string  `json:"surname" example:"Horvat"`
	Email             string  `json:"email" example:"ivana.horvat@fer.hr"`
	ProfilePictureURL string  `json:"profilePictureUrl" example:"https://cdn.example.com/ivana.png"`
	Subjects          *string `json:"subjects" example:"algebra,physics"`
	InstructionsCount *int    `json:"instructionsCount" example:"4"`
}

// SubjectDetailResponse is returned by GET /api/subject/{url}
type SubjectDetailResponse struct {
	Success    bool                `json:"success" example:"true"`
	Subject    SubjectResponse     `json:"subject"`
	Professors []ProfessorResponse `json:"professors"`
	Message    string              `json:"message" example:"Subject found."`
}

// SubjectsResponse is returned by GET /api/subjects
type SubjectsResponse struct {
	Success  bool              `json:"success" example:"true"`
	Subjects []SubjectResponse `json:"subjects"`
}

// NewSubjectResponse projects a subject model
func NewSubjectResponse(s *models.Subject) SubjectResponse {
	return SubjectResponse{
		Title:       s.Title,
		URL:         s.URL,
		Description: s.Description,
	}
}

// NewProfessorResponse projects a user model
func NewProfessorResponse(u *models.User) ProfessorResponse {
	return ProfessorResponse{
		ID:                u.ID,
		Name:              u.Name,
		Surname:           u.Surname,
		Email:             u.Email,
		ProfilePictureURL: u.ProfilePicture,
		Subjects:          u.Subjects,
		InstructionsCount: u.InstructionsCount,
	}
}
