package handlers

import (
	"net/http"
	"strconv"

	"github.com/elham715/Exam-System/internal/services"

	"github.com/gin-gonic/gin"
)

type ChapterHandler struct {
	bankService *services.QuestionBankService
}

func NewChapterHandler(bankService *services.QuestionBankService) *ChapterHandler {
	return &ChapterHandler{bankService: bankService}
}

// CreateChapter godoc
// @Summary      Create a chapter
// @Tags         chapters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} Chapter
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/chapters [post]
func (h *ChapterHandler) CreateChapter(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	chapter, err := h.bankService.CreateChapter(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, chapter)
}

// ListChapters godoc
// @Summary      List chapters
// @Tags         chapters
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Chapter
// @Router       /api/v1/admin/chapters [get]
func (h *ChapterHandler) ListChapters(c *gin.Context) {
	chapters, err := h.bankService.ListChapters()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chapters)
}

type CreateTopicRequest struct {
	Name        string `json:"name" binding:"required"`
	YoutubeLink string `json:"youtube_link"`
}

// CreateTopic godoc
// @Summary      Create a topic under a chapter
// @Tags         chapters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Chapter ID"
// @Param        request body CreateTopicRequest true "Topic data"
// @Success      201 {object} Topic
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/chapters/{id}/topics [post]
func (h *ChapterHandler) CreateTopic(c *gin.Context) {
	chapterID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid chapter id"})
		return
	}

	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	topic, err := h.bankService.CreateTopic(uint(chapterID), req.Name, req.YoutubeLink)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, topic)
}

// ListTopics godoc
// @Summary      List topics of a chapter
// @Tags         chapters
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Chapter ID"
// @Success      200 {array} Topic
// @Router       /api/v1/admin/chapters/{id}/topics [get]
func (h *ChapterHandler) ListTopics(c *gin.Context) {
	chapterID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid chapter id"})
		return
	}

	topics, err := h.bankService.ListTopics(uint(chapterID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, topics)
}

// UpdateTopic godoc
// @Summary      Update a topic's remediation video link
// @Tags         chapters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Topic ID"
// @Success      200 {object} Topic
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/topics/{id} [put]
func (h *ChapterHandler) UpdateTopic(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid topic id"})
		return
	}

	var req struct {
		YoutubeLink string `json:"youtube_link"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	topic, err := h.bankService.UpdateTopicLink(uint(topicID), req.YoutubeLink)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}
