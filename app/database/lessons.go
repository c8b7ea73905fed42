package database

import (
	"database/sql"

	"github.com/mirr-x/smart-class-companion/app/models"
)

func CreateLesson(db *sql.DB, lesson *models.Lesson) error {
	query := `INSERT INTO lessons (class_id, title, description, position, is_published)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		lesson.ClassID, lesson.Title, lesson.Description,
		lesson.Position, lesson.IsPublished,
	).Scan(&lesson.ID, &lesson.CreatedAt, &lesson.UpdatedAt)
}

func GetLessonByID(db *sql.DB, lessonID string) (*models.Lesson, error) {
	lesson := &models.Lesson{Class: &models.Class{}}
	query := `SELECT l.id, l.class_id, l.title, l.description, l.position,
					 l.is_published, l.created_at, l.updated_at,
					 c.name, c.teacher_id
			  FROM lessons l
			  JOIN classes c ON c.id = l.class_id AND c.is_active = true
			  WHERE l.id = $1`

	err := db.QueryRow(query, lessonID).Scan(
		&lesson.ID, &lesson.ClassID, &lesson.Title, &lesson.Description,
		&lesson.Position, &lesson.IsPublished, &lesson.CreatedAt, &lesson.UpdatedAt,
		&lesson.Class.Name, &lesson.Class.TeacherID,
	)
	if err != nil {
		return nil, err
	}
	lesson.Class.ID = lesson.ClassID
	return lesson, nil
}

// GetLessonsByClass lists lessons in display order. When publishedOnly is
// set (student view) unpublished lessons are filtered out.
func GetLessonsByClass(db *sql.DB, classID string, publishedOnly bool) ([]*models.Lesson, error) {
	query := `SELECT l.id, l.title, l.description, l.position, l.is_published, l.created_at,
					 COUNT(q.id),
					 COUNT(q.id) FILTER (WHERE a.id IS NULL)
			  FROM lessons l
			  LEFT JOIN questions q ON q.lesson_id = l.id
			  LEFT JOIN answers a ON a.question_id = q.id
			  WHERE l.class_id = $1 AND (NOT $2 OR l.is_published)
			  GROUP BY l.id
			  ORDER BY l.position, l.created_at DESC`

	rows, err := db.Query(query, classID, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []*models.Lesson
	for rows.Next() {
		lesson := &models.Lesson{ClassID: classID}
		if err := rows.Scan(
			&lesson.ID, &lesson.Title, &lesson.Description, &lesson.Position,
			&lesson.IsPublished, &lesson.CreatedAt,
			&lesson.QuestionCount, &lesson.UnansweredQuestionCount,
		); err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}

func UpdateLesson(db *sql.DB, lesson *models.Lesson) error {
	query := `UPDATE lessons SET title = $1, description = $2, position = $3,
					 is_published = $4, updated_at = NOW()
			  WHERE id = $5`
	_, err := db.Exec(query,
		lesson.Title, lesson.Description, lesson.Position, lesson.IsPublished, lesson.ID)
	return err
}

// DeleteLesson removes the lesson; files, questions and answers go with it
// via the cascading foreign keys.
func DeleteLesson(db *sql.DB, lessonID string) error {
	_, err := db.Exec(`DELETE FROM lessons WHERE id = $1`, lessonID)
	return err
}

func CreateLessonFile(db *sql.DB, file *models.LessonFile) error {
	query := `INSERT INTO lesson_files (lesson_id, file_name, file_path, file_size)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, uploaded_at`

	return db.QueryRow(query,
		file.LessonID, file.FileName, file.FilePath, file.FileSize,
	).Scan(&file.ID, &file.UploadedAt)
}

func GetLessonFiles(db *sql.DB, lessonID string) ([]*models.LessonFile, error) {
	query := `SELECT id, file_name, file_path, file_size, uploaded_at
			  FROM lesson_files WHERE lesson_id = $1
			  ORDER BY uploaded_at DESC`

	rows, err := db.Query(query, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.LessonFile
	for rows.Next() {
		f := &models.LessonFile{LessonID: lessonID}
		if err := rows.Scan(&f.ID, &f.FileName, &f.FilePath, &f.FileSize, &f.UploadedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func GetLessonFileByID(db *sql.DB, fileID string) (*models.LessonFile, error) {
	f := &models.LessonFile{}
	query := `SELECT id, lesson_id, file_name, file_path, file_size, uploaded_at
			  FROM lesson_files WHERE id = $1`

	err := db.QueryRow(query, fileID).Scan(
		&f.ID, &f.LessonID, &f.FileName, &f.FilePath, &f.FileSize, &f.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func DeleteLessonFile(db *sql.DB, fileID string) error {
	_, err := db.Exec(`DELETE FROM lesson_files WHERE id = $1`, fileID)
	return err
}
