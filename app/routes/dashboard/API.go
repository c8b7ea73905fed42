package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
)

// GetDashboardStatsAPI returns the role-specific dashboard as JSON.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	if user.IsTeacher() {
		dash, err := database.GetTeacherDashboard(config.GetDB(), user.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load dashboard")
		}
		return c.JSON(dash)
	}

	dash, err := loadStudentDashboard(user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	return c.JSON(dash)
}
