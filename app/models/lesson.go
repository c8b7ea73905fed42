package models

import "time"

// Lesson is teaching content within a class, ordered by Position.
// Students only see published lessons.
type Lesson struct {
	ID          string    `json:"id" validate:"required,uuid"`
	ClassID     string    `json:"class_id" validate:"required,uuid"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Class *Class        `json:"class,omitempty"`
	Files []*LessonFile `json:"files,omitempty"`

	QuestionCount           int `json:"question_count"`
	UnansweredQuestionCount int `json:"unanswered_question_count"`
}

// LessonFile is an uploaded attachment, stored under the media directory
// and referenced by its relative path.
type LessonFile struct {
	ID         string    `json:"id" validate:"required,uuid"`
	LessonID   string    `json:"lesson_id" validate:"required,uuid"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"-"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
