package classes

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
	"github.com/mirr-x/smart-class-companion/app/validators"
)

func CreateClassAPI(c *fiber.Ctx) error {
	type CreateClassRequest struct {
		Name        string `json:"name" form:"name" validate:"required,max=200"`
		Description string `json:"description" form:"description"`
		Subject     string `json:"subject" form:"subject" validate:"max=100"`
		Room        string `json:"room" form:"room" validate:"max=50"`
	}

	user := auth.CurrentUser(c)

	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return c.Status(400).Render("classes/create", fiber.Map{
			"Title": "Create Class - Class Companion",
			"user":  user,
			"Error": "Class name is required",
		})
	}

	class := &models.Class{
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
		Room:        req.Room,
		TeacherID:   user.ID,
	}
	if err := database.CreateClass(config.GetDB(), class); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}

	return c.Redirect("/classes/" + class.ID)
}

// JoinClassAPI enrolls the student using a join code. An unknown code is
// a 404, a repeat join surfaces as "already enrolled".
func JoinClassAPI(c *fiber.Ctx) error {
	type JoinClassRequest struct {
		ClassCode string `json:"class_code" form:"class_code" validate:"required,max=10"`
	}

	user := auth.CurrentUser(c)

	renderError := func(status int, msg string) error {
		return c.Status(status).Render("classes/join", fiber.Map{
			"Title": "Join Class - Class Companion",
			"user":  user,
			"Error": msg,
		})
	}

	var req JoinClassRequest
	if err := c.BodyParser(&req); err != nil {
		return renderError(400, "Invalid request")
	}
	if err := validators.Struct(&req); err != nil {
		return renderError(400, "Class code is required")
	}

	db := config.GetDB()
	code := strings.ToUpper(strings.TrimSpace(req.ClassCode))

	class, err := database.GetClassByCode(db, code)
	if err != nil {
		if status, msg := joinFailure(err); status != 0 {
			return renderError(status, msg)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	if _, err := database.CreateEnrollment(db, user.ID, class.ID); err != nil {
		if status, msg := joinFailure(err); status != 0 {
			return renderError(status, msg)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to join class")
	}

	return c.Redirect("/classes/" + class.ID)
}

// joinFailure maps the two expected join errors to the status and
// message re-rendered on the join form: an unknown code is 404, and the
// unique (student, class) index turning a repeat join into ErrDuplicate
// is 400. Anything else returns 0 and propagates as a server error.
func joinFailure(err error) (int, string) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fiber.StatusNotFound, "Invalid class code. Please check and try again."
	case errors.Is(err, database.ErrDuplicate):
		return fiber.StatusBadRequest, "You are already enrolled in this class."
	}
	return 0, ""
}

func UpdateClassAPI(c *fiber.Ctx) error {
	type UpdateClassRequest struct {
		Name        string `json:"name" form:"name" validate:"required,max=200"`
		Description string `json:"description" form:"description"`
		Subject     string `json:"subject" form:"subject" validate:"max=100"`
		Room        string `json:"room" form:"room" validate:"max=50"`
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	class, err := RequireOwner(db, user, c.Params("id"))
	if err != nil {
		return err
	}

	var req UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return c.Status(400).Render("classes/edit", fiber.Map{
			"Title": "Edit Class - Class Companion",
			"user":  user,
			"class": class,
			"Error": "Class name is required",
		})
	}

	class.Name = req.Name
	class.Description = req.Description
	class.Subject = req.Subject
	class.Room = req.Room

	// The join code never changes; UpdateClass leaves it untouched.
	if err := database.UpdateClass(db, class); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class")
	}

	return c.Redirect("/classes/" + class.ID)
}

func ArchiveClassAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	class, err := RequireOwner(db, user, c.Params("id"))
	if err != nil {
		return err
	}
	if err := database.ArchiveClass(db, class.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive class")
	}

	return c.Redirect("/dashboard")
}

// GetClassesAPI lists the caller's classes: owned ones for a teacher,
// enrolled ones for a student.
func GetClassesAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	if user.IsTeacher() {
		classes, err := database.GetClassesByTeacher(db, user.ID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
		}
		return c.JSON(fiber.Map{"classes": classes, "count": len(classes)})
	}

	enrollments, err := database.GetEnrollmentsByStudent(db, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	classes := make([]*models.Class, 0, len(enrollments))
	for _, e := range enrollments {
		classes = append(classes, e.Class)
	}
	return c.JSON(fiber.Map{"classes": classes, "count": len(classes)})
}

func GetClassAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	class, err := RequireAccess(config.GetDB(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"class": class})
}
