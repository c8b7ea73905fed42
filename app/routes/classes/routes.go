package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App) {
	classes := app.Group("/classes")
	classes.Use(auth.AuthMiddleware)

	classes.Get("/create", auth.TeacherRequired(), ShowCreateClassPage)
	classes.Post("/create", auth.TeacherRequired(), CreateClassAPI)
	classes.Get("/join", auth.StudentRequired(), ShowJoinClassPage)
	classes.Post("/join", auth.StudentRequired(), JoinClassAPI)
	classes.Get("/:id", ClassDetailPage)
	classes.Get("/:id/edit", auth.TeacherRequired(), ShowEditClassPage)
	classes.Post("/:id/edit", auth.TeacherRequired(), UpdateClassAPI)
	classes.Post("/:id/delete", auth.TeacherRequired(), ArchiveClassAPI)

	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClassesAPI)
	api.Get("/:id", GetClassAPI)
}

func ShowCreateClassPage(c *fiber.Ctx) error {
	return c.Render("classes/create", fiber.Map{
		"Title":       "Create Class - Class Companion",
		"CurrentPage": "classes",
		"user":        auth.CurrentUser(c),
	})
}

func ShowJoinClassPage(c *fiber.Ctx) error {
	return c.Render("classes/join", fiber.Map{
		"Title":       "Join Class - Class Companion",
		"CurrentPage": "classes",
		"user":        auth.CurrentUser(c),
	})
}

// ClassDetailPage renders the class page: roster and join code for the
// teacher, lessons and assignments for both roles.
func ClassDetailPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	class, err := RequireAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}

	publishedOnly := user.IsStudent()
	lessons, err := database.GetLessonsByClass(db, class.ID, publishedOnly)
	if err != nil {
		return err
	}
	assignments, err := database.GetAssignmentsByClass(db, class.ID, publishedOnly)
	if err != nil {
		return err
	}
	announcements, err := database.GetAnnouncementsByClass(db, class.ID)
	if err != nil {
		return err
	}

	var roster []*models.Enrollment
	if user.IsTeacher() {
		roster, err = database.GetClassRoster(db, class.ID)
		if err != nil {
			return err
		}
	}

	return c.Render("classes/detail", fiber.Map{
		"Title":         class.Name + " - Class Companion",
		"CurrentPage":   "classes",
		"user":          user,
		"class":         class,
		"lessons":       lessons,
		"assignments":   assignments,
		"announcements": announcements,
		"roster":        roster,
		"IsTeacher":     user.IsTeacher(),
	})
}

func ShowEditClassPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	class, err := RequireOwner(config.GetDB(), user, c.Params("id"))
	if err != nil {
		return err
	}

	return c.Render("classes/edit", fiber.Map{
		"Title":       "Edit Class - Class Companion",
		"CurrentPage": "classes",
		"user":        user,
		"class":       class,
	})
}
