package announcements

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/routes/auth"
)

func SetupAnnouncementsRoutes(app *fiber.App) {
	app.Post("/classes/:classId/announcements", auth.AuthMiddleware, auth.TeacherRequired(), CreateAnnouncementAPI)

	announcements := app.Group("/announcements")
	announcements.Use(auth.AuthMiddleware, auth.TeacherRequired())
	announcements.Post("/:id/pin", TogglePinAPI)
	announcements.Post("/:id/delete", DeleteAnnouncementAPI)
}
