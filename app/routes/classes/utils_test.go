package classes

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
)

func TestOwnedBy(t *testing.T) {
	class := &models.Class{ID: "c1", TeacherID: "owner"}

	assert.NoError(t, ownedBy(class, &models.User{ID: "owner", Role: models.RoleTeacher}))

	err := ownedBy(class, &models.User{ID: "other", Role: models.RoleTeacher})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestJoinFailure(t *testing.T) {
	status, msg := joinFailure(sql.ErrNoRows)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, msg, "Invalid class code")

	// A repeat join surfaces as ErrDuplicate from the unique
	// (student, class) index and is shown on the form, not a 500.
	status, msg = joinFailure(database.ErrDuplicate)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, msg, "already enrolled")

	// Wrapped driver errors are still recognized.
	status, _ = joinFailure(errors.Join(errors.New("insert"), database.ErrDuplicate))
	assert.Equal(t, fiber.StatusBadRequest, status)

	// Anything else propagates as a server error.
	status, msg = joinFailure(errors.New("connection refused"))
	assert.Zero(t, status)
	assert.Empty(t, msg)
}
