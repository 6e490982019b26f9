package handlers

import (
	"errors"
	"net/http"

	"github.com/elham715/Exam-System/internal/models"
	"github.com/elham715/Exam-System/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type QuestionSet = models.QuestionSet
type Question = models.Question
type Chapter = models.Chapter
type Topic = models.Topic
type Exam = models.Exam
type StudentExam = models.StudentExam

// respondError maps the service error taxonomy onto HTTP statuses. Store
// failures surface as 500 with the underlying message; nothing is retried.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrEmptySet):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
