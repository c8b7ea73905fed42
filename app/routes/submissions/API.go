package submissions

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/metrics"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/routes/assignments"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
	"github.com/mirr-x/smart-class-companion/app/storage"
	"github.com/mirr-x/smart-class-companion/app/validators"
)

// gradeAccess decides whether the user may grade the submission: only
// the teacher of the owning class gets through. A teacher of some other
// class is forbidden, same as a student.
func gradeAccess(submission *models.Submission, user *models.User) error {
	if submission.Assignment.Class.TeacherID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "You do not have access to this submission")
	}
	return nil
}

// downloadAccess additionally admits the student who submitted.
func downloadAccess(submission *models.Submission, user *models.User) error {
	if submission.StudentID == user.ID {
		return nil
	}
	return gradeAccess(submission, user)
}

// requireGradeAccess loads a submission for grading.
func requireGradeAccess(db *sql.DB, user *models.User, submissionID string) (*models.Submission, error) {
	submission, err := database.GetSubmissionByID(db, submissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		return nil, err
	}
	if err := gradeAccess(submission, user); err != nil {
		return nil, err
	}
	return submission, nil
}

// SubmitAssignmentAPI records the student's work. The timeliness status
// is computed here, once, against the current due date and stored with
// the row.
func SubmitAssignmentAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	assignment, err := assignments.RequireAssignmentAccess(db, user, c.Params("assignmentId"))
	if err != nil {
		return err
	}

	renderError := func(status int, msg string) error {
		return c.Status(status).Render("submissions/submit", fiber.Map{
			"Title":      "Submit Assignment - Class Companion",
			"user":       user,
			"assignment": assignment,
			"Error":      msg,
		})
	}

	now := time.Now()
	if now.After(assignment.DueDate) && !assignment.AllowLateSubmission {
		return renderError(400, "The deadline has passed and this assignment does not accept late submissions.")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return renderError(400, "Please choose a file to submit.")
	}
	if err := validators.ValidateUpload(fh); err != nil {
		return renderError(400, err.Error())
	}

	media := storage.Default()
	rel := media.NewPath("submissions", fh.Filename)
	abs, err := media.Abs(rel)
	if err != nil {
		return err
	}
	if err := c.SaveFile(fh, abs); err != nil {
		return err
	}

	submission := &models.Submission{
		AssignmentID: assignment.ID,
		StudentID:    user.ID,
		FileName:     fh.Filename,
		FilePath:     rel,
		SubmittedAt:  now,
		Status:       models.TimelinessFor(now, assignment.DueDate),
	}
	if err := database.CreateSubmission(db, submission); err != nil {
		// Remove the stored file again; the row never landed.
		_ = media.Remove(rel)
		if errors.Is(err, database.ErrDuplicate) {
			return renderError(400, "You have already submitted this assignment.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit assignment")
	}
	metrics.Uploads.Inc()

	return c.Redirect("/assignments/" + assignment.ID)
}

// GradeSubmissionAPI awards points and feedback. Points outside
// [0, max_points] are rejected; both boundaries are valid.
func GradeSubmissionAPI(c *fiber.Ctx) error {
	type GradeRequest struct {
		Points   string `json:"points" form:"points"`
		Feedback string `json:"feedback" form:"feedback"`
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	submission, err := requireGradeAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}

	renderError := func(msg string) error {
		return c.Status(400).Render("submissions/grade", fiber.Map{
			"Title":      "Grade Submission - Class Companion",
			"user":       user,
			"submission": submission,
			"assignment": submission.Assignment,
			"Error":      msg,
		})
	}

	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return renderError("Invalid request")
	}

	points, err := strconv.Atoi(req.Points)
	if err != nil {
		return renderError("Please enter a valid number for points.")
	}
	if err := validators.ValidatePoints(points, submission.Assignment.MaxPoints); err != nil {
		return renderError(err.Error())
	}

	if err := database.GradeSubmission(db, submission.ID, points, req.Feedback); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to grade submission")
	}

	return c.Redirect("/assignments/" + submission.AssignmentID)
}

// DownloadSubmissionAPI streams the submitted file to the owning teacher
// or the submitting student.
func DownloadSubmissionAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	submission, err := database.GetSubmissionByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		return err
	}
	if err := downloadAccess(submission, user); err != nil {
		return err
	}

	abs, err := storage.Default().Abs(submission.FilePath)
	if err != nil {
		return err
	}
	return c.Download(abs, submission.FileName)
}
