package submissions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/routes/assignments"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
)

func SetupSubmissionsRoutes(app *fiber.App) {
	submissions := app.Group("/submissions")
	submissions.Use(auth.AuthMiddleware)

	submissions.Get("/:id/grade", auth.TeacherRequired(), ShowGradeSubmissionPage)
	submissions.Post("/:id/grade", auth.TeacherRequired(), GradeSubmissionAPI)
	submissions.Get("/:id/download", DownloadSubmissionAPI)

	app.Get("/assignments/:assignmentId/submit", auth.AuthMiddleware, auth.StudentRequired(), ShowSubmitPage)
	app.Post("/assignments/:assignmentId/submit", auth.AuthMiddleware, auth.StudentRequired(), SubmitAssignmentAPI)
}

func ShowSubmitPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	assignment, err := assignments.RequireAssignmentAccess(db, user, c.Params("assignmentId"))
	if err != nil {
		return err
	}

	existing, err := database.GetSubmissionForStudent(db, assignment.ID, user.ID)
	if err != nil {
		return err
	}

	return c.Render("submissions/submit", fiber.Map{
		"Title":       "Submit Assignment - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"assignment":  assignment,
		"existing":    existing,
	})
}

func ShowGradeSubmissionPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	submission, err := requireGradeAccess(config.GetDB(), user, c.Params("id"))
	if err != nil {
		return err
	}

	return c.Render("submissions/grade", fiber.Map{
		"Title":       "Grade Submission - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"submission":  submission,
		"assignment":  submission.Assignment,
	})
}
