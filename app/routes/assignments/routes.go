package assignments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
	"github.com/mirr-x/smart-class-companion/app/routes/classes"
)

func SetupAssignmentsRoutes(app *fiber.App) {
	assignments := app.Group("/assignments")
	assignments.Use(auth.AuthMiddleware)

	assignments.Get("/:id", AssignmentDetailPage)
	assignments.Get("/:id/edit", auth.TeacherRequired(), ShowEditAssignmentPage)
	assignments.Post("/:id/edit", auth.TeacherRequired(), UpdateAssignmentAPI)
	assignments.Post("/:id/delete", auth.TeacherRequired(), DeleteAssignmentAPI)

	app.Get("/classes/:classId/assignments/create", auth.AuthMiddleware, auth.TeacherRequired(), ShowCreateAssignmentPage)
	app.Post("/classes/:classId/assignments/create", auth.AuthMiddleware, auth.TeacherRequired(), CreateAssignmentAPI)
}

func ShowCreateAssignmentPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	class, err := classes.RequireOwner(config.GetDB(), user, c.Params("classId"))
	if err != nil {
		return err
	}

	return c.Render("assignments/create", fiber.Map{
		"Title":       "Create Assignment - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"class":       class,
	})
}

// AssignmentDetailPage shows the assignment. The teacher sees every
// submission; a student sees only their own.
func AssignmentDetailPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	assignment, err := RequireAssignmentAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}

	var submissions []*models.Submission
	if user.IsTeacher() {
		submissions, err = database.GetSubmissionsByAssignment(db, assignment.ID)
		if err != nil {
			return err
		}
	} else {
		own, err := database.GetSubmissionForStudent(db, assignment.ID, user.ID)
		if err != nil {
			return err
		}
		if own != nil {
			submissions = []*models.Submission{own}
		}
	}

	return c.Render("assignments/detail", fiber.Map{
		"Title":       assignment.Title + " - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"assignment":  assignment,
		"class":       assignment.Class,
		"submissions": submissions,
		"IsTeacher":   user.IsTeacher(),
	})
}

func ShowEditAssignmentPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	assignment, err := RequireAssignmentAccess(config.GetDB(), user, c.Params("id"))
	if err != nil {
		return err
	}

	return c.Render("assignments/edit", fiber.Map{
		"Title":       "Edit Assignment - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"assignment":  assignment,
	})
}
