package questions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
)

func SetupQuestionsRoutes(app *fiber.App) {
	questions := app.Group("/questions")
	questions.Use(auth.AuthMiddleware)

	questions.Get("/:id/answer", auth.TeacherRequired(), ShowAnswerPage)
	questions.Post("/:id/answer", auth.TeacherRequired(), AnswerQuestionAPI)

	app.Post("/lessons/:lessonId/questions", auth.AuthMiddleware, auth.StudentRequired(), AskQuestionAPI)
}

func ShowAnswerPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	question, err := requireAnswerAccess(config.GetDB(), user, c.Params("id"))
	if err != nil {
		return err
	}

	return c.Render("questions/answer", fiber.Map{
		"Title":       "Answer Question - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"question":    question,
	})
}
