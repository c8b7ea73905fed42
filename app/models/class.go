package models

import "time"

// Class is a teacher-owned course. Students join it using the class code,
// which is generated once at creation and never changes afterwards.
type Class struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Room        string    `json:"room,omitempty"`
	TeacherID   string    `json:"teacher_id" validate:"required,uuid"`
	ClassCode   string    `json:"class_code"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Teacher *User `json:"teacher,omitempty"`

	// Aggregates filled by list queries, not stored.
	StudentCount    int `json:"student_count"`
	AssignmentCount int `json:"assignment_count"`
}
