package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/logging"
	"github.com/mirr-x/smart-class-companion/app/metrics"
	"github.com/mirr-x/smart-class-companion/app/observability"
	"github.com/mirr-x/smart-class-companion/app/routes/announcements"
	"github.com/mirr-x/smart-class-companion/app/routes/assignments"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
	"github.com/mirr-x/smart-class-companion/app/routes/classes"
	"github.com/mirr-x/smart-class-companion/app/routes/dashboard"
	"github.com/mirr-x/smart-class-companion/app/routes/lessons"
	"github.com/mirr-x/smart-class-companion/app/routes/questions"
	"github.com/mirr-x/smart-class-companion/app/routes/submissions"
	"github.com/mirr-x/smart-class-companion/app/storage"
)

const release = "class-companion@1.0.0"

// responseStatus maps a handler error to the status the ErrorHandler
// will send; a nil error keeps the status already written.
func responseStatus(err error, written int) int {
	if err == nil {
		return written
	}
	if e, ok := err.(*fiber.Error); ok {
		return e.Code
	}
	return fiber.StatusInternalServerError
}

// customErrorHandler renders error pages for web requests and JSON for
// /api paths. Server errors are forwarded to Sentry.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code >= 500 {
		observability.CaptureErr(err)
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Class Companion",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - Class Companion",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - Class Companion",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Server Error - Class Companion",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Class Companion",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer lg.Closer()

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		lg.Sugar.Warnw("sentry init failed", "err", err)
	}
	defer flushSentry()

	if err := cfg.InitDB(); err != nil {
		lg.Sugar.Fatalw("database init failed", "driver", cfg.DBDriver, "err", err)
	}
	defer config.GetDB().Close()
	lg.Sugar.Infow("database connected", "driver", cfg.DBDriver)

	if err := database.RunMigrations(config.GetDB()); err != nil {
		lg.Sugar.Fatalw("migrations failed", "err", err)
	}

	media, err := storage.Init(cfg.MediaDir)
	if err != nil {
		lg.Sugar.Fatalw("media dir init failed", "dir", cfg.MediaDir, "err", err)
	}
	storage.SetDefault(media)

	// Template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(cfg.Env != "prod")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		BodyLimit:         12 * 1024 * 1024,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		// The ErrorHandler has not written the response yet, so map
		// the returned error to its final status before recording.
		metrics.ObserveRequest(c.Method(), responseStatus(err, c.Response().StatusCode()), time.Since(start))
		return err
	})

	// Prometheus scrape endpoint
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Static files
	app.Static("/static", "./static")

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	classes.SetupClassesRoutes(app)
	lessons.SetupLessonsRoutes(app)
	assignments.SetupAssignmentsRoutes(app)
	submissions.SetupSubmissionsRoutes(app)
	questions.SetupQuestionsRoutes(app)
	announcements.SetupAnnouncementsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	lg.Sugar.Infow("server starting", "addr", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		lg.Sugar.Fatalw("server stopped", "err", err)
	}
}
