package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/mirr-x/smart-class-companion/app/models"
)

// CreateSubmission stores a submission with its timeliness status already
// computed by the caller. The unique (assignment_id, student_id)
// constraint turns a double submission into ErrDuplicate.
func CreateSubmission(db *sql.DB, submission *models.Submission) error {
	query := `INSERT INTO submissions (assignment_id, student_id, file_name, file_path,
					 submitted_at, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	err := db.QueryRow(query,
		submission.AssignmentID, submission.StudentID,
		submission.FileName, submission.FilePath,
		submission.SubmittedAt, submission.Status,
	).Scan(&submission.ID)

	if err != nil && isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func GetSubmissionByID(db *sql.DB, submissionID string) (*models.Submission, error) {
	s := &models.Submission{
		Assignment: &models.Assignment{Class: &models.Class{}},
		Student:    &models.User{},
	}
	query := `SELECT s.id, s.assignment_id, s.student_id, s.file_name, s.file_path,
					 s.submitted_at, s.status, s.points, s.feedback, s.graded_at,
					 a.title, a.due_date, a.max_points, a.class_id, c.teacher_id,
					 u.first_name, u.last_name
			  FROM submissions s
			  JOIN assignments a ON a.id = s.assignment_id
			  JOIN classes c ON c.id = a.class_id
			  JOIN users u ON u.id = s.student_id
			  WHERE s.id = $1`

	err := db.QueryRow(query, submissionID).Scan(
		&s.ID, &s.AssignmentID, &s.StudentID, &s.FileName, &s.FilePath,
		&s.SubmittedAt, &s.Status, &s.Points, &s.Feedback, &s.GradedAt,
		&s.Assignment.Title, &s.Assignment.DueDate, &s.Assignment.MaxPoints,
		&s.Assignment.ClassID, &s.Assignment.Class.TeacherID,
		&s.Student.FirstName, &s.Student.LastName,
	)
	if err != nil {
		return nil, err
	}
	s.Assignment.ID = s.AssignmentID
	s.Student.ID = s.StudentID
	return s, nil
}

// GetSubmissionForStudent returns the student's own submission for an
// assignment, or (nil, nil) when nothing was submitted yet. Any other
// error is a real database failure and must not be read as "not
// submitted".
func GetSubmissionForStudent(db *sql.DB, assignmentID, studentID string) (*models.Submission, error) {
	s := &models.Submission{AssignmentID: assignmentID, StudentID: studentID}
	query := `SELECT id, file_name, file_path, submitted_at, status, points, feedback, graded_at
			  FROM submissions WHERE assignment_id = $1 AND student_id = $2`

	err := db.QueryRow(query, assignmentID, studentID).Scan(
		&s.ID, &s.FileName, &s.FilePath, &s.SubmittedAt, &s.Status,
		&s.Points, &s.Feedback, &s.GradedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetSubmissionsByAssignment(db *sql.DB, assignmentID string) ([]*models.Submission, error) {
	query := `SELECT s.id, s.student_id, s.file_name, s.submitted_at, s.status,
					 s.points, s.feedback, s.graded_at,
					 u.first_name, u.last_name
			  FROM submissions s
			  JOIN users u ON u.id = s.student_id
			  WHERE s.assignment_id = $1
			  ORDER BY s.submitted_at DESC`

	rows, err := db.Query(query, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		s := &models.Submission{AssignmentID: assignmentID, Student: &models.User{}}
		if err := rows.Scan(
			&s.ID, &s.StudentID, &s.FileName, &s.SubmittedAt, &s.Status,
			&s.Points, &s.Feedback, &s.GradedAt,
			&s.Student.FirstName, &s.Student.LastName,
		); err != nil {
			return nil, err
		}
		s.Student.ID = s.StudentID
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// GradeSubmission records points and feedback. Range validation happens in
// the handler against the assignment's max_points.
func GradeSubmission(db *sql.DB, submissionID string, points int, feedback string) error {
	query := `UPDATE submissions SET points = $1, feedback = $2, graded_at = $3 WHERE id = $4`
	_, err := db.Exec(query, points, feedback, time.Now(), submissionID)
	return err
}
