package database

import (
	"database/sql"

	"github.com/mirr-x/smart-class-companion/app/models"
)

// CreateEnrollment enrolls a student into a class. The unique
// (student_id, class_id) constraint backs the duplicate check, so a
// concurrent double join still yields ErrDuplicate.
func CreateEnrollment(db *sql.DB, studentID, classID string) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{StudentID: studentID, ClassID: classID}
	query := `INSERT INTO enrollments (student_id, class_id)
			  VALUES ($1, $2)
			  RETURNING id, enrolled_at, is_active`

	err := db.QueryRow(query, studentID, classID).Scan(
		&enrollment.ID, &enrollment.EnrolledAt, &enrollment.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return enrollment, nil
}

func IsEnrolled(db *sql.DB, studentID, classID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
				SELECT 1 FROM enrollments
				WHERE student_id = $1 AND class_id = $2 AND is_active = true)`
	err := db.QueryRow(query, studentID, classID).Scan(&exists)
	return exists, err
}

// GetEnrollmentsByStudent lists a student's active enrollments with the
// class and its teacher attached.
func GetEnrollmentsByStudent(db *sql.DB, studentID string) ([]*models.Enrollment, error) {
	query := `SELECT e.id, e.class_id, e.enrolled_at,
					 c.name, c.subject, c.room, c.class_code, c.teacher_id,
					 u.first_name, u.last_name
			  FROM enrollments e
			  JOIN classes c ON c.id = e.class_id AND c.is_active = true
			  JOIN users u ON u.id = c.teacher_id
			  WHERE e.student_id = $1 AND e.is_active = true
			  ORDER BY e.enrolled_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e := &models.Enrollment{
			StudentID: studentID,
			Class:     &models.Class{Teacher: &models.User{}},
		}
		if err := rows.Scan(
			&e.ID, &e.ClassID, &e.EnrolledAt,
			&e.Class.Name, &e.Class.Subject, &e.Class.Room,
			&e.Class.ClassCode, &e.Class.TeacherID,
			&e.Class.Teacher.FirstName, &e.Class.Teacher.LastName,
		); err != nil {
			return nil, err
		}
		e.Class.ID = e.ClassID
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// GetClassRoster lists the students actively enrolled in a class.
func GetClassRoster(db *sql.DB, classID string) ([]*models.Enrollment, error) {
	query := `SELECT e.id, e.student_id, e.enrolled_at,
					 u.first_name, u.last_name, u.email
			  FROM enrollments e
			  JOIN users u ON u.id = e.student_id AND u.is_active = true
			  WHERE e.class_id = $1 AND e.is_active = true
			  ORDER BY u.last_name, u.first_name`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []*models.Enrollment
	for rows.Next() {
		e := &models.Enrollment{ClassID: classID, Student: &models.User{}}
		if err := rows.Scan(
			&e.ID, &e.StudentID, &e.EnrolledAt,
			&e.Student.FirstName, &e.Student.LastName, &e.Student.Email,
		); err != nil {
			return nil, err
		}
		e.Student.ID = e.StudentID
		roster = append(roster, e)
	}
	return roster, rows.Err()
}
