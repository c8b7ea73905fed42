package database

import (
	"database/sql"

	"github.com/mirr-x/smart-class-companion/app/models"
)

func CreateAssignment(db *sql.DB, assignment *models.Assignment) error {
	query := `INSERT INTO assignments (class_id, title, description, due_date, max_points,
					 allow_late_submission, is_published)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		assignment.ClassID, assignment.Title, assignment.Description,
		assignment.DueDate, assignment.MaxPoints,
		assignment.AllowLateSubmission, assignment.IsPublished,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
}

func GetAssignmentByID(db *sql.DB, assignmentID string) (*models.Assignment, error) {
	assignment := &models.Assignment{Class: &models.Class{}}
	query := `SELECT a.id, a.class_id, a.title, a.description, a.due_date, a.max_points,
					 a.allow_late_submission, a.is_published, a.created_at, a.updated_at,
					 c.name, c.teacher_id
			  FROM assignments a
			  JOIN classes c ON c.id = a.class_id AND c.is_active = true
			  WHERE a.id = $1`

	err := db.QueryRow(query, assignmentID).Scan(
		&assignment.ID, &assignment.ClassID, &assignment.Title, &assignment.Description,
		&assignment.DueDate, &assignment.MaxPoints,
		&assignment.AllowLateSubmission, &assignment.IsPublished,
		&assignment.CreatedAt, &assignment.UpdatedAt,
		&assignment.Class.Name, &assignment.Class.TeacherID,
	)
	if err != nil {
		return nil, err
	}
	assignment.Class.ID = assignment.ClassID
	return assignment, nil
}

func GetAssignmentsByClass(db *sql.DB, classID string, publishedOnly bool) ([]*models.Assignment, error) {
	query := `SELECT a.id, a.title, a.due_date, a.max_points, a.allow_late_submission,
					 a.is_published, a.created_at, COUNT(s.id)
			  FROM assignments a
			  LEFT JOIN submissions s ON s.assignment_id = a.id
			  WHERE a.class_id = $1 AND (NOT $2 OR a.is_published)
			  GROUP BY a.id
			  ORDER BY a.due_date`

	rows, err := db.Query(query, classID, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		a := &models.Assignment{ClassID: classID}
		if err := rows.Scan(
			&a.ID, &a.Title, &a.DueDate, &a.MaxPoints, &a.AllowLateSubmission,
			&a.IsPublished, &a.CreatedAt, &a.SubmissionCount,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// UpdateAssignment edits assignment fields. An edited due date does not
// touch the stored timeliness status of existing submissions.
func UpdateAssignment(db *sql.DB, assignment *models.Assignment) error {
	query := `UPDATE assignments SET title = $1, description = $2, due_date = $3,
					 max_points = $4, allow_late_submission = $5, is_published = $6,
					 updated_at = NOW()
			  WHERE id = $7`
	_, err := db.Exec(query,
		assignment.Title, assignment.Description, assignment.DueDate,
		assignment.MaxPoints, assignment.AllowLateSubmission, assignment.IsPublished,
		assignment.ID)
	return err
}

func DeleteAssignment(db *sql.DB, assignmentID string) error {
	_, err := db.Exec(`DELETE FROM assignments WHERE id = $1`, assignmentID)
	return err
}
