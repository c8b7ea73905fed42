package classes

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
)

// RequireAccess loads a class and checks the user may see it: teachers
// must own it, students must be actively enrolled. Returns fiber errors
// that the app error handler turns into 403/404 pages.
func RequireAccess(db *sql.DB, user *models.User, classID string) (*models.Class, error) {
	class, err := database.GetClassByID(db, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}

	if user.IsTeacher() {
		if err := ownedBy(class, user); err != nil {
			return nil, err
		}
		return class, nil
	}

	enrolled, err := database.IsEnrolled(db, user.ID, classID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, fiber.NewError(fiber.StatusForbidden, "You are not enrolled in this class")
	}
	return class, nil
}

// RequireOwner loads a class and checks the user is its teacher.
func RequireOwner(db *sql.DB, user *models.User, classID string) (*models.Class, error) {
	class, err := database.GetClassByID(db, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}
	if err := ownedBy(class, user); err != nil {
		return nil, err
	}
	return class, nil
}

// ownedBy is the ownership check behind RequireAccess and RequireOwner:
// a teacher only reaches classes they teach.
func ownedBy(class *models.Class, user *models.User) error {
	if class.TeacherID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "You do not have access to this class")
	}
	return nil
}
