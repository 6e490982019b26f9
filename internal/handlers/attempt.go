package handlers

import (
	"net/http"
	"strconv"

	"github.com/elham715/Exam-System/internal/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

// TakeExam godoc
// @Summary      Load an exam for taking
// @Description  Returns the exam and its questions in a fresh random order, without the answer key
// @Tags         attempts
// @Produce      json
// @Param        id path int true "Exam ID"
// @Success      200 {object} services.ExamDelivery
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/exams/{id}/take [get]
func (h *AttemptHandler) TakeExam(c *gin.Context) {
	examID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exam id"})
		return
	}

	delivery, err := h.attemptService.LoadExam(uint(examID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, delivery)
}

type StartAttemptRequest struct {
	Name  string `json:"name" binding:"required" example:"Jane Doe"`
	Email string `json:"email" binding:"required,email" example:"jane@example.com"`
}

// StartAttempt godoc
// @Summary      Start an exam attempt
// @Description  Upserts the student by email, opens an attempt and starts the countdown
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Param        id path int true "Exam ID"
// @Param        request body StartAttemptRequest true "Student identity"
// @Success      201 {object} StudentExam
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/exams/{id}/start [post]
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	examID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exam id"})
		return
	}

	var req StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	attempt, err := h.attemptService.StartAttempt(uint(examID), req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attempt)
}

type SubmitAttemptRequest struct {
	// Answers maps question id to the selected option value. Skipped
	// questions may simply be absent.
	Answers map[uint]string `json:"answers"`
}

// SubmitAttempt godoc
// @Summary      Submit an attempt
// @Description  Grades the submitted answers server-side; replaying a submission returns the stored result
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Param        id path int true "Attempt ID"
// @Param        request body SubmitAttemptRequest true "Raw answers"
// @Success      200 {object} StudentExam
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/attempts/{id}/submit [post]
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	attemptID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid attempt id"})
		return
	}

	var req SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	attempt, err := h.attemptService.SubmitAttempt(uint(attemptID), req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempt)
}
