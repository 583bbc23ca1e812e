package models

import "time"

// StatusRequested is stored on every newly requested session ("request sent").
// Nothing in the API transitions it afterwards.
const StatusRequested = "poslan zahtjev"

// InstructionSession is a tutoring appointment a student requested with a professor.
type InstructionSession struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	DateTime    time.Time `json:"dateTime" db:"date_time" example:"2024-05-10T14:00:00Z"`
	ProfessorID int64     `json:"professorId" db:"professor_id" example:"2"`
	StudentID   int64     `json:"studentId" db:"student_id" example:"5"`
	Status      string    `json:"status" db:"status" example:"poslan zahtjev"`
}
