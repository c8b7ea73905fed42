package assignments

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
	"github.com/mirr-x/smart-class-companion/app/routes/classes"
	"github.com/mirr-x/smart-class-companion/app/validators"
)

// dueDateLayout matches the datetime-local form input.
const dueDateLayout = "2006-01-02T15:04"

// RequireAssignmentAccess loads an assignment and applies the class
// access rules. Unpublished assignments stay hidden from students.
func RequireAssignmentAccess(db *sql.DB, user *models.User, assignmentID string) (*models.Assignment, error) {
	assignment, err := database.GetAssignmentByID(db, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Assignment not found")
		}
		return nil, err
	}
	if _, err := classes.RequireAccess(db, user, assignment.ClassID); err != nil {
		return nil, err
	}
	if !assignment.IsPublished && !user.IsTeacher() {
		return nil, fiber.NewError(fiber.StatusNotFound, "Assignment not found")
	}
	return assignment, nil
}

type assignmentForm struct {
	Title               string `json:"title" form:"title" validate:"required,max=200"`
	Description         string `json:"description" form:"description"`
	DueDate             string `json:"due_date" form:"due_date" validate:"required"`
	MaxPoints           int    `json:"max_points" form:"max_points" validate:"gte=0"`
	AllowLateSubmission bool   `json:"allow_late_submission" form:"allow_late_submission"`
	IsPublished         bool   `json:"is_published" form:"is_published"`
}

func (f *assignmentForm) parseDueDate() (time.Time, error) {
	if t, err := time.ParseInLocation(dueDateLayout, f.DueDate, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, f.DueDate)
}

func CreateAssignmentAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	class, err := classes.RequireOwner(db, user, c.Params("classId"))
	if err != nil {
		return err
	}

	renderError := func(msg string) error {
		return c.Status(400).Render("assignments/create", fiber.Map{
			"Title": "Create Assignment - Class Companion",
			"user":  user,
			"class": class,
			"Error": msg,
		})
	}

	var req assignmentForm
	if err := c.BodyParser(&req); err != nil {
		return renderError("Invalid request")
	}
	if err := validators.Struct(&req); err != nil {
		return renderError("Title, due date and a non-negative point value are required")
	}
	dueDate, err := req.parseDueDate()
	if err != nil {
		return renderError("Invalid due date")
	}

	assignment := &models.Assignment{
		ClassID:             class.ID,
		Title:               req.Title,
		Description:         req.Description,
		DueDate:             dueDate,
		MaxPoints:           req.MaxPoints,
		AllowLateSubmission: req.AllowLateSubmission,
		IsPublished:         req.IsPublished,
	}
	if err := database.CreateAssignment(db, assignment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create assignment")
	}

	return c.Redirect("/classes/" + class.ID)
}

// UpdateAssignmentAPI edits an assignment. Changing the due date never
// rewrites the timeliness status of submissions already stored.
func UpdateAssignmentAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	assignment, err := RequireAssignmentAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}

	var req assignmentForm
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Title, due date and a non-negative point value are required")
	}
	dueDate, err := req.parseDueDate()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid due date")
	}

	assignment.Title = req.Title
	assignment.Description = req.Description
	assignment.DueDate = dueDate
	assignment.MaxPoints = req.MaxPoints
	assignment.AllowLateSubmission = req.AllowLateSubmission
	assignment.IsPublished = req.IsPublished

	if err := database.UpdateAssignment(db, assignment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update assignment")
	}

	return c.Redirect("/assignments/" + assignment.ID)
}

func DeleteAssignmentAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	assignment, err := RequireAssignmentAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}
	if err := database.DeleteAssignment(db, assignment.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete assignment")
	}

	return c.Redirect("/classes/" + assignment.ClassID)
}
