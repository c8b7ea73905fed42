package announcements

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
	"github.com/mirr-x/smart-class-companion/app/routes/classes"
	"github.com/mirr-x/smart-class-companion/app/validators"
)

func CreateAnnouncementAPI(c *fiber.Ctx) error {
	type AnnouncementRequest struct {
		Title    string `json:"title" form:"title" validate:"required,max=200"`
		Content  string `json:"content" form:"content" validate:"required"`
		IsPinned bool   `json:"is_pinned" form:"is_pinned"`
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	class, err := classes.RequireOwner(db, user, c.Params("classId"))
	if err != nil {
		return err
	}

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Title and content are required")
	}

	announcement := &models.Announcement{
		ClassID:   class.ID,
		TeacherID: user.ID,
		Title:     req.Title,
		Content:   req.Content,
		IsPinned:  req.IsPinned,
	}
	if err := database.CreateAnnouncement(db, announcement); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to post announcement")
	}

	return c.Redirect("/classes/" + class.ID)
}

func loadOwned(c *fiber.Ctx) (*models.Announcement, error) {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	announcement, err := database.GetAnnouncementByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Announcement not found")
		}
		return nil, err
	}
	if _, err := classes.RequireOwner(db, user, announcement.ClassID); err != nil {
		return nil, err
	}
	return announcement, nil
}

func TogglePinAPI(c *fiber.Ctx) error {
	announcement, err := loadOwned(c)
	if err != nil {
		return err
	}
	if err := database.SetAnnouncementPinned(config.GetDB(), announcement.ID, !announcement.IsPinned); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return c.Redirect("/classes/" + announcement.ClassID)
}

func DeleteAnnouncementAPI(c *fiber.Ctx) error {
	announcement, err := loadOwned(c)
	if err != nil {
		return err
	}
	if err := database.DeleteAnnouncement(config.GetDB(), announcement.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return c.Redirect("/classes/" + announcement.ClassID)
}
