package models

import "time"

// Enrollment links a student to a class. The (student, class) pair is
// unique at the database level, which is what prevents double-enrollment
// under concurrent joins.
type Enrollment struct {
	ID         string    `json:"id" validate:"required,uuid"`
	StudentID  string    `json:"student_id" validate:"required,uuid"`
	ClassID    string    `json:"class_id" validate:"required,uuid"`
	EnrolledAt time.Time `json:"enrolled_at"`
	IsActive   bool      `json:"is_active"`

	Student *User  `json:"student,omitempty"`
	Class   *Class `json:"class,omitempty"`
}
