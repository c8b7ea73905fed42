package questions

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

// requireAnswerAccess loads a question for answering; only the teacher of
// the class the lesson belongs to may answer, and only once.
func requireAnswerAccess(db *sql.DB, user *models.User, questionID string) (*models.Question, error) {
	question, err := database.GetQuestionByID(db, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return nil, err
	}
	if question.Lesson.Class.TeacherID != user.ID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not have access to this question")
	}
	return question, nil
}

// AskQuestionAPI posts a student question on a lesson the student can see.
func AskQuestionAPI(c *fiber.Ctx) error {
	type AskRequest struct {
		QuestionText string `json:"question_text" form:"question_text" validate:"required"`
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	lesson, err := database.GetLessonByID(db, c.Params("lessonId"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Lesson not found")
		}
		return err
	}
	if _, err := classes.RequireAccess(db, user, lesson.ClassID); err != nil {
		return err
	}
	if !lesson.IsPublished {
		return fiber.NewError(fiber.StatusNotFound, "Lesson not found")
	}

	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Question text is required")
	}

	question := &models.Question{
		LessonID:     lesson.ID,
		StudentID:    user.ID,
		QuestionText: req.QuestionText,
	}
	if err := database.CreateQuestion(db, question); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to post question")
	}

	return c.Redirect("/lessons/" + lesson.ID)
}

// AnswerQuestionAPI posts the teacher's answer. A second answer to the
// same question is rejected.
func AnswerQuestionAPI(c *fiber.Ctx) error {
	type AnswerRequest struct {
		AnswerText string `json:"answer_text" form:"answer_text" validate:"required"`
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	question, err := requireAnswerAccess(db, user, c.Params("id"))
	if err != nil {
		return err
	}
	if question.IsAnswered() {
		return fiber.NewError(fiber.StatusBadRequest, "This question has already been answered")
	}

	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validators.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Answer text is required")
	}

	answer := &models.Answer{
		QuestionID: question.ID,
		TeacherID:  user.ID,
		AnswerText: req.AnswerText,
	}
	if err := database.CreateAnswer(db, answer); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return fiber.NewError(fiber.StatusBadRequest, "This question has already been answered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to post answer")
	}

	return c.Redirect("/lessons/" + question.LessonID)
}
