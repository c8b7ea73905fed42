package submissions

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirr-x/smart-class-companion/app/models"
)

func sampleSubmission() *models.Submission {
	return &models.Submission{
		ID:        "sub1",
		StudentID: "student1",
		Assignment: &models.Assignment{
			ID:    "a1",
			Class: &models.Class{ID: "c1", TeacherID: "owner"},
		},
	}
}

func TestGradeAccess(t *testing.T) {
	submission := sampleSubmission()

	owner := &models.User{ID: "owner", Role: models.RoleTeacher}
	assert.NoError(t, gradeAccess(submission, owner))

	// A teacher who does not own the class is forbidden.
	otherTeacher := &models.User{ID: "other", Role: models.RoleTeacher}
	err := gradeAccess(submission, otherTeacher)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)

	// So is the submitting student.
	student := &models.User{ID: "student1", Role: models.RoleStudent}
	err = gradeAccess(submission, student)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestDownloadAccess(t *testing.T) {
	submission := sampleSubmission()

	assert.NoError(t, downloadAccess(submission, &models.User{ID: "owner"}))
	assert.NoError(t, downloadAccess(submission, &models.User{ID: "student1"}))

	// Another enrolled student cannot fetch someone else's work.
	err := downloadAccess(submission, &models.User{ID: "student2"})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}
