package lessons

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/metrics"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
	"github.com/mirr-x/smart-class-companion/app/routes/classes"
	"github.com/mirr-x/smart-class-companion/app/storage"
	"github.com/mirr-x/smart-class-companion/app/validators"
)

// requireLessonAccess loads a lesson and applies the class access rules.
// Unpublished lessons are only visible to the owning teacher.
func requireLessonAccess(db *sql.DB, user *models.User, lessonID string) (*models.Lesson, error) {
	lesson, err := database.GetLessonByID(db, lessonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Lesson not found")
		}
		return nil, err
	}
	if _, err := classes.RequireAccess(db, user, lesson.ClassID); err != nil {
		return nil, err
	}
	if !lesson.IsPublished && !user.IsTeacher() {
		return nil, fiber.NewError(fiber.StatusNotFound, "Lesson not found")
	}
	return lesson, nil
}

// saveUploads validates every file before any of them is persisted, then
// stores them under the media directory and records the rows.
func saveUploads(c *fiber.Ctx, db *sql.DB, lessonID string) error {
	form, err := c.MultipartForm()
	if err != nil {
		return nil // no files attached
	}
	files := form.File["files"]

	for _, fh := range files {
		if err := validators.ValidateUpload(fh); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File '"+fh.Filename+"': "+err.Error())
		}
	}

	media := storage.Default()
	for _, fh := range files {
		rel := media.NewPath("lessons", fh.Filename)
		abs, err := media.Abs(rel)
		if err != nil {
			return err
		}
		if err := c.SaveFile(fh, abs); err != nil {
			return err
		}
		file := &models.LessonFile{
			LessonID: lessonID,
			FileName: fh.Filename,
			FilePath: rel,
			FileSize: fh.Size,
		}
		if err := database.CreateLessonFile(db, file); err != nil {
			return err
		}
		metrics.Uploads.Inc()
	}
	return nil
}

func CreateLessonAPI(c *fiber.Ctx) error {
	type CreateLessonRequest struct {
		Title       string `json:"title" form:"title" validate:"required,max=200"`
		Description string `json:"description" form:"description"`
		Position    int    `json:"position" form:"position" validate:"gte=0"`
		IsPublished bool   `json:"is_published" form:"is_published"`
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	class, err := classes.RequireOwner(db, user, c.Params("classId"))
	if err != nil {
		return err
	}

	var req CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return c.Status(400).Render("lessons/create", fiber.Map{
			"Title": "Create Lesson - Class Companion",
			"user":  user,
			"class": class,
			"Error": "Lesson title is required",
		})
	}

	lesson := &models.Lesson{
		ClassID:     class.ID,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		IsPublished: req.IsPublished,
	}
	if err := database.CreateLesson(db, lesson); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create lesson")
	}
	if err := saveUploads(c, db, lesson.ID); err != nil {
		return err
	}

	return c.Redirect("/classes/" + class.ID)
}

func UpdateLessonAPI(c *fiber.Ctx) error {
	type UpdateLessonRequest struct {
		Title       string `json:"title" form:"title" validate:"required,max=200"`
		Description string `json:"description" form:"description"`
		Position    int    `json:"position" form:"position" validate:"gte=0"`
		IsPublished bool   `json:"is_published" form:"is_published"`
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	lesson, err := requireLessonAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}

	var req UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Lesson title is required")
	}

	lesson.Title = req.Title
	lesson.Description = req.Description
	lesson.Position = req.Position
	lesson.IsPublished = req.IsPublished

	if err := database.UpdateLesson(db, lesson); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update lesson")
	}
	if err := saveUploads(c, db, lesson.ID); err != nil {
		return err
	}

	return c.Redirect("/lessons/" + lesson.ID)
}

func DeleteLessonAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	lesson, err := requireLessonAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}

	// Remove stored files before the rows cascade away.
	files, err := database.GetLessonFiles(db, lesson.ID)
	if err != nil {
		return err
	}
	media := storage.Default()
	for _, f := range files {
		if err := media.Remove(f.FilePath); err != nil {
			return err
		}
	}

	if err := database.DeleteLesson(db, lesson.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete lesson")
	}

	return c.Redirect("/classes/" + lesson.ClassID)
}

// DownloadLessonFileAPI streams an attachment after the usual class
// access check.
func DownloadLessonFileAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	file, err := database.GetLessonFileByID(db, c.Params("fileId"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "File not found")
		}
		return err
	}
	if _, err := requireLessonAccess(db, user, file.LessonID); err != nil {
		return err
	}

	abs, err := storage.Default().Abs(file.FilePath)
	if err != nil {
		return err
	}
	return c.Download(abs, file.FileName)
}

func DeleteLessonFileAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	file, err := database.GetLessonFileByID(db, c.Params("fileId"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "File not found")
		}
		return err
	}
	if _, err := requireLessonAccess(db, user, file.LessonID); err != nil {
		return err
	}

	if err := storage.Default().Remove(file.FilePath); err != nil {
		return err
	}
	if err := database.DeleteLessonFile(db, file.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete file")
	}

	return c.Redirect("/lessons/" + file.LessonID + "/edit")
}
