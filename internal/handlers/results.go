package handlers

import (
	"net/http"
	"strconv"

	"github.com/elham715/Exam-System/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultsHandler struct {
	resultsService *services.ResultsService
}

func NewResultsHandler(resultsService *services.ResultsService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService}
}

// GetResults godoc
// @Summary      Get an attempt's results
// @Description  Score summary plus mistaken answers grouped by topic with remediation links
// @Tags         results
// @Produce      json
// @Param        id path int true "Attempt ID"
// @Success      200 {object} services.ResultView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/attempts/{id}/results [get]
func (h *ResultsHandler) GetResults(c *gin.Context) {
	attemptID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid attempt id"})
		return
	}

	view, err := h.resultsService.GetResults(uint(attemptID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
