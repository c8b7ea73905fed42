package database

import (
	"database/sql"

	"github.com/mirr-x/smart-class-companion/app/models"
)

func CreateQuestion(db *sql.DB, question *models.Question) error {
	query := `INSERT INTO questions (lesson_id, student_id, question_text)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		question.LessonID, question.StudentID, question.QuestionText,
	).Scan(&question.ID, &question.CreatedAt, &question.UpdatedAt)
}

func GetQuestionByID(db *sql.DB, questionID string) (*models.Question, error) {
	q := &models.Question{
		Student: &models.User{},
		Lesson:  &models.Lesson{Class: &models.Class{}},
	}
	var answerID sql.NullString
	query := `SELECT q.id, q.lesson_id, q.student_id, q.question_text, q.created_at,
					 u.first_name, u.last_name,
					 l.title, l.class_id, c.teacher_id,
					 a.id
			  FROM questions q
			  JOIN users u ON u.id = q.student_id
			  JOIN lessons l ON l.id = q.lesson_id
			  JOIN classes c ON c.id = l.class_id
			  LEFT JOIN answers a ON a.question_id = q.id
			  WHERE q.id = $1`

	err := db.QueryRow(query, questionID).Scan(
		&q.ID, &q.LessonID, &q.StudentID, &q.QuestionText, &q.CreatedAt,
		&q.Student.FirstName, &q.Student.LastName,
		&q.Lesson.Title, &q.Lesson.ClassID, &q.Lesson.Class.TeacherID,
		&answerID,
	)
	if err != nil {
		return nil, err
	}
	q.Student.ID = q.StudentID
	q.Lesson.ID = q.LessonID
	if answerID.Valid {
		q.Answer = &models.Answer{ID: answerID.String, QuestionID: q.ID}
	}
	return q, nil
}

// GetQuestionsByLesson returns the lesson's Q&A thread, newest first, with
// the asking student and any answer attached.
func GetQuestionsByLesson(db *sql.DB, lessonID string) ([]*models.Question, error) {
	query := `SELECT q.id, q.student_id, q.question_text, q.created_at,
					 u.first_name, u.last_name,
					 a.id, a.teacher_id, a.answer_text, a.created_at,
					 t.first_name, t.last_name
			  FROM questions q
			  JOIN users u ON u.id = q.student_id
			  LEFT JOIN answers a ON a.question_id = q.id
			  LEFT JOIN users t ON t.id = a.teacher_id
			  WHERE q.lesson_id = $1
			  ORDER BY q.created_at DESC`

	rows, err := db.Query(query, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		q := &models.Question{LessonID: lessonID, Student: &models.User{}}
		var (
			answerID, answerTeacherID, answerText  sql.NullString
			answerCreatedAt                        sql.NullTime
			teacherFirst, teacherLast              sql.NullString
		)
		if err := rows.Scan(
			&q.ID, &q.StudentID, &q.QuestionText, &q.CreatedAt,
			&q.Student.FirstName, &q.Student.LastName,
			&answerID, &answerTeacherID, &answerText, &answerCreatedAt,
			&teacherFirst, &teacherLast,
		); err != nil {
			return nil, err
		}
		q.Student.ID = q.StudentID
		if answerID.Valid {
			q.Answer = &models.Answer{
				ID:         answerID.String,
				QuestionID: q.ID,
				TeacherID:  answerTeacherID.String,
				AnswerText: answerText.String,
				CreatedAt:  answerCreatedAt.Time,
				Teacher: &models.User{
					ID:        answerTeacherID.String,
					FirstName: teacherFirst.String,
					LastName:  teacherLast.String,
				},
			}
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// CreateAnswer posts the teacher's answer. The unique question_id
// constraint rejects a second answer to the same question.
func CreateAnswer(db *sql.DB, answer *models.Answer) error {
	query := `INSERT INTO answers (question_id, teacher_id, answer_text)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		answer.QuestionID, answer.TeacherID, answer.AnswerText,
	).Scan(&answer.ID, &answer.CreatedAt, &answer.UpdatedAt)

	if err != nil && isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
