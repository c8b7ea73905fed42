package database

import (
	"database/sql"

	"github.com/mirr-x/smart-class-companion/app/models"
)

func CreateAnnouncement(db *sql.DB, announcement *models.Announcement) error {
	query := `INSERT INTO announcements (class_id, teacher_id, title, content, is_pinned)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		announcement.ClassID, announcement.TeacherID,
		announcement.Title, announcement.Content, announcement.IsPinned,
	).Scan(&announcement.ID, &announcement.CreatedAt, &announcement.UpdatedAt)
}

// GetAnnouncementsByClass lists announcements pinned-first, newest-first.
func GetAnnouncementsByClass(db *sql.DB, classID string) ([]*models.Announcement, error) {
	query := `SELECT a.id, a.teacher_id, a.title, a.content, a.is_pinned, a.created_at,
					 u.first_name, u.last_name
			  FROM announcements a
			  JOIN users u ON u.id = a.teacher_id
			  WHERE a.class_id = $1
			  ORDER BY a.is_pinned DESC, a.created_at DESC`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		a := &models.Announcement{ClassID: classID, Teacher: &models.User{}}
		if err := rows.Scan(
			&a.ID, &a.TeacherID, &a.Title, &a.Content, &a.IsPinned, &a.CreatedAt,
			&a.Teacher.FirstName, &a.Teacher.LastName,
		); err != nil {
			return nil, err
		}
		a.Teacher.ID = a.TeacherID
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func GetAnnouncementByID(db *sql.DB, announcementID string) (*models.Announcement, error) {
	a := &models.Announcement{}
	query := `SELECT id, class_id, teacher_id, title, content, is_pinned, created_at, updated_at
			  FROM announcements WHERE id = $1`

	err := db.QueryRow(query, announcementID).Scan(
		&a.ID, &a.ClassID, &a.TeacherID, &a.Title, &a.Content,
		&a.IsPinned, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func SetAnnouncementPinned(db *sql.DB, announcementID string, pinned bool) error {
	query := `UPDATE announcements SET is_pinned = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, pinned, announcementID)
	return err
}

func DeleteAnnouncement(db *sql.DB, announcementID string) error {
	_, err := db.Exec(`DELETE FROM announcements WHERE id = $1`, announcementID)
	return err
}
