package models

import "time"

// Submission is a student's work product for an assignment. At most one
// submission exists per (assignment, student), enforced by the database.
type Submission struct {
	ID           string           `json:"id" validate:"required,uuid"`
	AssignmentID string           `json:"assignment_id" validate:"required,uuid"`
	StudentID    string           `json:"student_id" validate:"required,uuid"`
	FileName     string           `json:"file_name"`
	FilePath     string           `json:"-"`
	SubmittedAt  time.Time        `json:"submitted_at"`
	Status       SubmissionStatus `json:"status"`
	Points       *int             `json:"points,omitempty"`
	Feedback     string           `json:"feedback,omitempty"`
	GradedAt     *time.Time       `json:"graded_at,omitempty"`

	Assignment *Assignment `json:"assignment,omitempty"`
	Student    *User       `json:"student,omitempty"`
}

// TimelinessFor returns ON_TIME when the submission timestamp is at or
// before the due date, LATE otherwise.
func TimelinessFor(submittedAt, dueDate time.Time) SubmissionStatus {
	if submittedAt.After(dueDate) {
		return StatusLate
	}
	return StatusOnTime
}

func (s *Submission) IsGraded() bool {
	return s.Points != nil
}
