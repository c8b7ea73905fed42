package database

import (
	"database/sql"

	"github.com/mirr-x/smart-class-companion/app/models"
)

// GetTeacherDashboard aggregates the teacher's classes, grading backlog,
// open questions and recent submissions.
func GetTeacherDashboard(db *sql.DB, teacherID string) (*models.TeacherDashboard, error) {
	classes, err := GetClassesByTeacher(db, teacherID)
	if err != nil {
		return nil, err
	}

	dash := &models.TeacherDashboard{
		Classes:      classes,
		TotalClasses: len(classes),
	}

	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM submissions s
		JOIN assignments a ON a.id = s.assignment_id
		JOIN classes c ON c.id = a.class_id
		WHERE c.teacher_id = $1 AND c.is_active = true AND s.points IS NULL
	`, teacherID).Scan(&dash.PendingGrading)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM questions q
		JOIN lessons l ON l.id = q.lesson_id
		JOIN classes c ON c.id = l.class_id
		LEFT JOIN answers ans ON ans.question_id = q.id
		WHERE c.teacher_id = $1 AND c.is_active = true AND ans.id IS NULL
	`, teacherID).Scan(&dash.UnansweredQuestions)
	if err != nil {
		return nil, err
	}

	dash.RecentSubmissions, err = getRecentSubmissionsForTeacher(db, teacherID, 5)
	if err != nil {
		return nil, err
	}
	return dash, nil
}

func getRecentSubmissionsForTeacher(db *sql.DB, teacherID string, limit int) ([]*models.Submission, error) {
	query := `SELECT s.id, s.assignment_id, s.student_id, s.submitted_at, s.status, s.points,
					 a.title, c.name, u.first_name, u.last_name
			  FROM submissions s
			  JOIN assignments a ON a.id = s.assignment_id
			  JOIN classes c ON c.id = a.class_id
			  JOIN users u ON u.id = s.student_id
			  WHERE c.teacher_id = $1 AND c.is_active = true
			  ORDER BY s.submitted_at DESC
			  LIMIT $2`

	rows, err := db.Query(query, teacherID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		s := &models.Submission{
			Assignment: &models.Assignment{Class: &models.Class{}},
			Student:    &models.User{},
		}
		if err := rows.Scan(
			&s.ID, &s.AssignmentID, &s.StudentID, &s.SubmittedAt, &s.Status, &s.Points,
			&s.Assignment.Title, &s.Assignment.Class.Name,
			&s.Student.FirstName, &s.Student.LastName,
		); err != nil {
			return nil, err
		}
		s.Assignment.ID = s.AssignmentID
		s.Student.ID = s.StudentID
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// GetUnsubmittedAssignments returns the published assignments of a
// student's active enrollments that the student has not submitted,
// ordered by due date. The caller splits them into upcoming and missing.
func GetUnsubmittedAssignments(db *sql.DB, studentID string) ([]*models.Assignment, error) {
	query := `SELECT a.id, a.class_id, a.title, a.due_date, a.max_points, c.name
			  FROM assignments a
			  JOIN classes c ON c.id = a.class_id AND c.is_active = true
			  JOIN enrollments e ON e.class_id = c.id
					AND e.student_id = $1 AND e.is_active = true
			  WHERE a.is_published = true
				AND NOT EXISTS (
					SELECT 1 FROM submissions s
					WHERE s.assignment_id = a.id AND s.student_id = $1)
			  ORDER BY a.due_date`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		a := &models.Assignment{Class: &models.Class{}}
		if err := rows.Scan(
			&a.ID, &a.ClassID, &a.Title, &a.DueDate, &a.MaxPoints, &a.Class.Name,
		); err != nil {
			return nil, err
		}
		a.Class.ID = a.ClassID
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// GetRecentLessonsForStudent lists the latest published lessons across the
// student's enrolled classes.
func GetRecentLessonsForStudent(db *sql.DB, studentID string, limit int) ([]*models.Lesson, error) {
	query := `SELECT l.id, l.class_id, l.title, l.created_at, c.name
			  FROM lessons l
			  JOIN classes c ON c.id = l.class_id AND c.is_active = true
			  JOIN enrollments e ON e.class_id = c.id
					AND e.student_id = $1 AND e.is_active = true
			  WHERE l.is_published = true
			  ORDER BY l.created_at DESC
			  LIMIT $2`

	rows, err := db.Query(query, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []*models.Lesson
	for rows.Next() {
		l := &models.Lesson{Class: &models.Class{}}
		if err := rows.Scan(&l.ID, &l.ClassID, &l.Title, &l.CreatedAt, &l.Class.Name); err != nil {
			return nil, err
		}
		l.Class.ID = l.ClassID
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}
