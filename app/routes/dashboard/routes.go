package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, DashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
}

// DashboardPage renders the role-specific landing page.
func DashboardPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if user.IsTeacher() {
		return teacherDashboard(c, user)
	}
	return studentDashboard(c, user)
}

func teacherDashboard(c *fiber.Ctx, user *models.User) error {
	dash, err := database.GetTeacherDashboard(config.GetDB(), user.ID)
	if err != nil {
		return err
	}

	return c.Render("dashboard/teacher", fiber.Map{
		"Title":       "Dashboard - Class Companion",
		"CurrentPage": "dashboard",
		"user":        user,
		"dashboard":   dash,
	})
}

func studentDashboard(c *fiber.Ctx, user *models.User) error {
	dash, err := loadStudentDashboard(user.ID)
	if err != nil {
		return err
	}

	return c.Render("dashboard/student", fiber.Map{
		"Title":       "Dashboard - Class Companion",
		"CurrentPage": "dashboard",
		"user":        user,
		"dashboard":   dash,
	})
}

func loadStudentDashboard(studentID string) (*models.StudentDashboard, error) {
	db := config.GetDB()

	enrollments, err := database.GetEnrollmentsByStudent(db, studentID)
	if err != nil {
		return nil, err
	}
	unsubmitted, err := database.GetUnsubmittedAssignments(db, studentID)
	if err != nil {
		return nil, err
	}
	recentLessons, err := database.GetRecentLessonsForStudent(db, studentID, 5)
	if err != nil {
		return nil, err
	}

	upcoming, missing := models.PartitionAssignments(unsubmitted, time.Now())
	return &models.StudentDashboard{
		Enrollments:         enrollments,
		UpcomingAssignments: upcoming,
		MissingAssignments:  missing,
		RecentLessons:       recentLessons,
	}, nil
}
