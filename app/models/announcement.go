package models

import "time"

// Announcement is posted by the class teacher. Pinned announcements sort
// before unpinned ones.
type Announcement struct {
	ID        string    `json:"id" validate:"required,uuid"`
	ClassID   string    `json:"class_id" validate:"required,uuid"`
	TeacherID string    `json:"teacher_id" validate:"required,uuid"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Teacher *User `json:"teacher,omitempty"`
}
