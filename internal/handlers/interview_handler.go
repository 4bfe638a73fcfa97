package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"prepai/interview-api/internal/models"
	"prepai/interview-api/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// HandleStartInterview handles POST /start-interview. The body is the
// profile produced by /upload-resume.
func (h *InterviewHandler) HandleStartInterview(c *fiber.Ctx) error {
	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	session, err := h.interviewService.StartInterview(c.Context(), profile)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.StartInterviewResponse{
		InterviewID: session.ID(),
		Question:    session.NextQuestion(),
	})
}

// HandleSubmitAnswer handles POST /submit-answer.
func (h *InterviewHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	var req models.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.InterviewID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interview_id is required",
		})
	}

	outcome, err := h.interviewService.SubmitAnswer(c.Context(), req.InterviewID, req.QuestionID, req.Answer)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp := models.SubmitAnswerResponse{LastScore: outcome.Score}
	if outcome.Completed {
		resp.Status = "completed"
		resp.Results = outcome.Results
	} else {
		resp.Status = "next"
		resp.Question = outcome.Next
	}

	return c.JSON(resp)
}

// statusForError maps the service error taxonomy onto HTTP statuses: bad
// input is 4xx, upstream and parse failures are 502.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrAnswerOutOfOrder),
		errors.Is(err, services.ErrInterviewComplete):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUpstream),
		errors.Is(err, services.ErrMalformedResponse):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
