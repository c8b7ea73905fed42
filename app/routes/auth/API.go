package auth

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/validators"
)

func setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	// The field accepts either the username or the email address.
	user, err := database.GetUserByUsername(config.GetDB(), req.Username)
	if errors.Is(err, sql.ErrNoRows) && strings.Contains(req.Username, "@") {
		user, err = database.GetUserByEmail(config.GetDB(), req.Username)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(401).Render("auth/login", fiber.Map{
				"Title": "Login - Class Companion",
				"Error": "Invalid username or password",
			}, "")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).Render("auth/login", fiber.Map{
			"Title": "Login - Class Companion",
			"Error": "Invalid username or password",
		}, "")
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}
	setAuthCookie(c, token)

	return c.Redirect("/dashboard")
}

func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Username        string `json:"username" form:"username" validate:"required,min=3,max=150"`
		Email           string `json:"email" form:"email" validate:"required,email"`
		Password        string `json:"password" form:"password" validate:"required,min=8"`
		PasswordConfirm string `json:"password_confirm" form:"password_confirm" validate:"required"`
		FirstName       string `json:"first_name" form:"first_name" validate:"required"`
		LastName        string `json:"last_name" form:"last_name" validate:"required"`
		Role            string `json:"role" form:"role" validate:"required,oneof=TEACHER STUDENT"`
	}

	renderError := func(msg string) error {
		return c.Status(400).Render("auth/register", fiber.Map{
			"Title": "Register - Class Companion",
			"Error": msg,
		}, "")
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return renderError("Invalid request")
	}
	if err := validators.Struct(&req); err != nil {
		return renderError("Please fill in all required fields correctly")
	}
	if req.Password != req.PasswordConfirm {
		return renderError("Passwords do not match")
	}

	db := config.GetDB()
	if taken, err := database.UsernameTaken(db, req.Username); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	} else if taken {
		return renderError("Username already exists")
	}
	if taken, err := database.EmailTaken(db, req.Email); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	} else if taken {
		return renderError("Email already registered")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.Role(req.Role),
	}
	if err := database.CreateUser(db, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return renderError("Username or email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}
	setAuthCookie(c, token)

	return c.Redirect("/dashboard")
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" form:"current_password"`
		NewPassword     string `json:"new_password" form:"new_password" validate:"required,min=8"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "New password must be at least 8 characters"})
	}

	userID := c.Locals("user_id").(string)
	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := database.UpdateUserPassword(config.GetDB(), userID, hashed); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update password")
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// UpdateProfileAPI updates the editable profile fields and re-renders
// the profile page.
func UpdateProfileAPI(c *fiber.Ctx) error {
	type UpdateProfileRequest struct {
		FirstName string `json:"first_name" form:"first_name" validate:"required"`
		LastName  string `json:"last_name" form:"last_name" validate:"required"`
		Bio       string `json:"bio" form:"bio"`
	}

	user := CurrentUser(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return c.Status(400).Render("auth/profile", fiber.Map{
			"Title":       "Profile - Class Companion",
			"CurrentPage": "profile",
			"user":        user,
			"Error":       "First and last name are required",
		})
	}

	if err := database.UpdateUserProfile(config.GetDB(), user.ID, req.FirstName, req.LastName, req.Bio); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Bio = req.Bio

	// The cookie still carries the old name until the next login; the
	// page renders the fresh values.
	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - Class Companion",
		"CurrentPage": "profile",
		"user":        user,
		"Success":     "Profile updated",
	})
}

// DeactivateAccountAPI soft-deletes the account after a password check
// and clears the session cookie. Deactivated users no longer resolve in
// the login lookups.
func DeactivateAccountAPI(c *fiber.Ctx) error {
	type DeactivateRequest struct {
		Password string `json:"password" form:"password" validate:"required"`
	}

	var req DeactivateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	userID := c.Locals("user_id").(string)
	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(400).Render("auth/profile", fiber.Map{
			"Title":       "Profile - Class Companion",
			"CurrentPage": "profile",
			"user":        user,
			"Error":       "Password is incorrect",
		})
	}

	if err := database.DeactivateUser(config.GetDB(), userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate account")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/auth/login")
}
