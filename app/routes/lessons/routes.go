package lessons

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
	"github.com/mirr-x/smart-class-companion/app/routes/classes"
)

func SetupLessonsRoutes(app *fiber.App) {
	lessons := app.Group("/lessons")
	lessons.Use(auth.AuthMiddleware)

	lessons.Get("/:id", LessonDetailPage)
	lessons.Get("/:id/edit", auth.TeacherRequired(), ShowEditLessonPage)
	lessons.Post("/:id/edit", auth.TeacherRequired(), UpdateLessonAPI)
	lessons.Post("/:id/delete", auth.TeacherRequired(), DeleteLessonAPI)
	lessons.Get("/files/:fileId/download", DownloadLessonFileAPI)
	lessons.Post("/files/:fileId/delete", auth.TeacherRequired(), DeleteLessonFileAPI)

	// Creation is scoped to a class.
	app.Get("/classes/:classId/lessons/create", auth.AuthMiddleware, auth.TeacherRequired(), ShowCreateLessonPage)
	app.Post("/classes/:classId/lessons/create", auth.AuthMiddleware, auth.TeacherRequired(), CreateLessonAPI)
}

func ShowCreateLessonPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	class, err := classes.RequireOwner(config.GetDB(), user, c.Params("classId"))
	if err != nil {
		return err
	}

	return c.Render("lessons/create", fiber.Map{
		"Title":       "Create Lesson - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"class":       class,
	})
}

// LessonDetailPage shows the lesson with its files and Q&A thread.
// Students only reach published lessons of classes they are enrolled in.
func LessonDetailPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	lesson, err := requireLessonAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}

	files, err := database.GetLessonFiles(db, lesson.ID)
	if err != nil {
		return err
	}
	questions, err := database.GetQuestionsByLesson(db, lesson.ID)
	if err != nil {
		return err
	}

	return c.Render("lessons/detail", fiber.Map{
		"Title":       lesson.Title + " - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"lesson":      lesson,
		"class":       lesson.Class,
		"files":       files,
		"questions":   questions,
		"IsTeacher":   user.IsTeacher(),
	})
}

func ShowEditLessonPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	lesson, err := requireLessonAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}
	files, err := database.GetLessonFiles(db, lesson.ID)
	if err != nil {
		return err
	}

	return c.Render("lessons/edit", fiber.Map{
		"Title":       "Edit Lesson - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"lesson":      lesson,
		"files":       files,
	})
}
