package models

import "time"

// Assignment is a gradable task with a due date and a point ceiling.
type Assignment struct {
	ID                  string    `json:"id" validate:"required,uuid"`
	ClassID             string    `json:"class_id" validate:"required,uuid"`
	Title               string    `json:"title" validate:"required"`
	Description         string    `json:"description"`
	DueDate             time.Time `json:"due_date" validate:"required"`
	MaxPoints           int       `json:"max_points" validate:"gte=0"`
	AllowLateSubmission bool      `json:"allow_late_submission"`
	IsPublished         bool      `json:"is_published"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Class *Class `json:"class,omitempty"`

	SubmissionCount int `json:"submission_count"`
}

func (a *Assignment) IsOverdue() bool {
	return time.Now().After(a.DueDate)
}

// PartitionAssignments splits unsubmitted assignments into upcoming
// (due date at or after now) and missing (due date in the past).
func PartitionAssignments(assignments []*Assignment, now time.Time) (upcoming, missing []*Assignment) {
	for _, a := range assignments {
		if a.DueDate.Before(now) {
			missing = append(missing, a)
		} else {
			upcoming = append(upcoming, a)
		}
	}
	return upcoming, missing
}
