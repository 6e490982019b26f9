package handlers

import (
	"net/http"
	"strconv"

	"github.com/elham715/Exam-System/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionSetHandler struct {
	bankService *services.QuestionBankService
}

func NewQuestionSetHandler(bankService *services.QuestionBankService) *QuestionSetHandler {
	return &QuestionSetHandler{bankService: bankService}
}

type CreateQuestionSetRequest struct {
	Name string `json:"name" binding:"required" example:"Physics Chapter 3"`
}

// CreateQuestionSet godoc
// @Summary      Create a question set
// @Tags         question-sets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuestionSetRequest true "Question set data"
// @Success      201 {object} QuestionSet
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/question-sets [post]
func (h *QuestionSetHandler) CreateQuestionSet(c *gin.Context) {
	var req CreateQuestionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	set, err := h.bankService.CreateQuestionSet(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, set)
}

// ListQuestionSets godoc
// @Summary      List question sets
// @Tags         question-sets
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} QuestionSet
// @Router       /api/v1/admin/question-sets [get]
func (h *QuestionSetHandler) ListQuestionSets(c *gin.Context) {
	sets, err := h.bankService.ListQuestionSets()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sets)
}

// GetQuestionSet godoc
// @Summary      Get a question set with its questions
// @Tags         question-sets
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question set ID"
// @Success      200 {object} QuestionSet
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/question-sets/{id} [get]
func (h *QuestionSetHandler) GetQuestionSet(c *gin.Context) {
	setID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question set id"})
		return
	}

	set, err := h.bankService.GetQuestionSet(uint(setID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, set)
}

// DeleteQuestionSet godoc
// @Summary      Delete a question set and its questions
// @Tags         question-sets
// @Security     BearerAuth
// @Param        id path int true "Question set ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/question-sets/{id} [delete]
func (h *QuestionSetHandler) DeleteQuestionSet(c *gin.Context) {
	setID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question set id"})
		return
	}

	if err := h.bankService.DeleteQuestionSet(uint(setID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "question set deleted"})
}
