package handlers

import (
	"net/http"
	"strconv"

	"github.com/elham715/Exam-System/internal/services"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	examService *services.ExamService
}

func NewExamHandler(examService *services.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

type ComposeExamRequest struct {
	Title           string `json:"title" binding:"required" example:"Final Exam Practice"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1" example:"60"`
	QuestionSetID   uint   `json:"question_set_id" binding:"required" example:"1"`
}

// ComposeExam godoc
// @Summary      Compose an exam from a question set
// @Description  Snapshots the set's current questions into a new exam
// @Tags         exams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ComposeExamRequest true "Exam data"
// @Success      201 {object} Exam
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/exams [post]
func (h *ExamHandler) ComposeExam(c *gin.Context) {
	var req ComposeExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	exam, err := h.examService.ComposeExam(req.Title, req.DurationMinutes, req.QuestionSetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, exam)
}

// ListExams godoc
// @Summary      List exams
// @Tags         exams
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Exam
// @Router       /api/v1/admin/exams [get]
func (h *ExamHandler) ListExams(c *gin.Context) {
	exams, err := h.examService.ListExams()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary      Get an exam
// @Tags         exams
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Exam ID"
// @Success      200 {object} Exam
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/exams/{id} [get]
func (h *ExamHandler) GetExam(c *gin.Context) {
	examID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exam id"})
		return
	}

	exam, err := h.examService.GetExam(uint(examID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary      Delete an exam
// @Tags         exams
// @Security     BearerAuth
// @Param        id path int true "Exam ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *gin.Context) {
	examID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exam id"})
		return
	}

	if err := h.examService.DeleteExam(uint(examID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "exam deleted"})
}
