package models

import "time"

// Question is a student inquiry on a lesson. It is answered once the
// teacher posts the matching Answer row.
type Question struct {
	ID           string    `json:"id" validate:"required,uuid"`
	LessonID     string    `json:"lesson_id" validate:"required,uuid"`
	StudentID    string    `json:"student_id" validate:"required,uuid"`
	QuestionText string    `json:"question_text" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Student *User   `json:"student,omitempty"`
	Lesson  *Lesson `json:"lesson,omitempty"`
	Answer  *Answer `json:"answer,omitempty"`
}

func (q *Question) IsAnswered() bool {
	return q.Answer != nil
}

// Answer is the teacher's reply. At most one answer exists per question.
type Answer struct {
	ID         string    `json:"id" validate:"required,uuid"`
	QuestionID string    `json:"question_id" validate:"required,uuid"`
	TeacherID  string    `json:"teacher_id" validate:"required,uuid"`
	AnswerText string    `json:"answer_text" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Teacher *User `json:"teacher,omitempty"`
}
