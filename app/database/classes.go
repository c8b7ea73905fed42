package database

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"math/big"

	"github.com/mirr-x/smart-class-companion/app/models"
)

const classCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ClassCodeLength is the length of the generated join code.
const ClassCodeLength = 6

// NewClassCode returns a random 6-character uppercase alphanumeric code.
// Uniqueness is enforced by the class_code unique index; CreateClass
// retries on collision.
func NewClassCode() (string, error) {
	code := make([]byte, ClassCodeLength)
	max := big.NewInt(int64(len(classCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = classCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// CreateClass inserts a class with a freshly generated join code,
// retrying a few times if the code collides with an existing one.
func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, description, subject, room, teacher_id, class_code)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, is_active, created_at, updated_at`

	for attempt := 0; attempt < 5; attempt++ {
		code, err := NewClassCode()
		if err != nil {
			return err
		}
		err = db.QueryRow(query,
			class.Name, class.Description, class.Subject, class.Room,
			class.TeacherID, code,
		).Scan(&class.ID, &class.IsActive, &class.CreatedAt, &class.UpdatedAt)
		if err == nil {
			class.ClassCode = code
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
	}
	return fmt.Errorf("could not generate a unique class code")
}

func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	class := &models.Class{Teacher: &models.User{}}
	query := `SELECT c.id, c.name, c.description, c.subject, c.room, c.teacher_id,
					 c.class_code, c.is_active, c.created_at, c.updated_at,
					 u.first_name, u.last_name, u.email
			  FROM classes c
			  JOIN users u ON u.id = c.teacher_id
			  WHERE c.id = $1 AND c.is_active = true`

	err := db.QueryRow(query, classID).Scan(
		&class.ID, &class.Name, &class.Description, &class.Subject, &class.Room,
		&class.TeacherID, &class.ClassCode, &class.IsActive,
		&class.CreatedAt, &class.UpdatedAt,
		&class.Teacher.FirstName, &class.Teacher.LastName, &class.Teacher.Email,
	)
	if err != nil {
		return nil, err
	}
	class.Teacher.ID = class.TeacherID
	return class, nil
}

func GetClassByCode(db *sql.DB, code string) (*models.Class, error) {
	class := &models.Class{}
	query := `SELECT id, name, description, subject, room, teacher_id, class_code,
					 is_active, created_at, updated_at
			  FROM classes WHERE class_code = $1 AND is_active = true`

	err := db.QueryRow(query, code).Scan(
		&class.ID, &class.Name, &class.Description, &class.Subject, &class.Room,
		&class.TeacherID, &class.ClassCode, &class.IsActive,
		&class.CreatedAt, &class.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return class, nil
}

// GetClassesByTeacher lists a teacher's active classes with enrollment and
// assignment counts for the dashboard.
func GetClassesByTeacher(db *sql.DB, teacherID string) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.subject, c.room, c.class_code, c.created_at,
					 COUNT(DISTINCT e.id) FILTER (WHERE e.is_active),
					 COUNT(DISTINCT a.id) FILTER (WHERE a.is_published)
			  FROM classes c
			  LEFT JOIN enrollments e ON e.class_id = c.id
			  LEFT JOIN assignments a ON a.class_id = c.id
			  WHERE c.teacher_id = $1 AND c.is_active = true
			  GROUP BY c.id
			  ORDER BY c.created_at DESC`

	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{TeacherID: teacherID}
		if err := rows.Scan(
			&class.ID, &class.Name, &class.Subject, &class.Room,
			&class.ClassCode, &class.CreatedAt,
			&class.StudentCount, &class.AssignmentCount,
		); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

// UpdateClass changes the editable fields. The class code is immutable
// after creation and deliberately not part of the statement.
func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `UPDATE classes SET name = $1, description = $2, subject = $3, room = $4, updated_at = NOW()
			  WHERE id = $5`
	_, err := db.Exec(query, class.Name, class.Description, class.Subject, class.Room, class.ID)
	return err
}

// ArchiveClass soft-deletes a class; enrollments and content stay in place
// but the class disappears from every listing.
func ArchiveClass(db *sql.DB, classID string) error {
	query := `UPDATE classes SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, classID)
	return err
}
