package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/elham715/Exam-System/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuestionHandler struct {
	bankService *services.QuestionBankService
	uploadDir   string
}

func NewQuestionHandler(bankService *services.QuestionBankService, uploadDir string) *QuestionHandler {
	return &QuestionHandler{bankService: bankService, uploadDir: uploadDir}
}

type CreateQuestionRequest struct {
	QuestionText string                 `json:"question_text" binding:"required"`
	Options      []services.OptionInput `json:"options" binding:"required"`
	ChapterID    uint                   `json:"chapter_id" binding:"required"`
	TopicID      *uint                  `json:"topic_id"`
	YoutubeLink  string                 `json:"youtube_link"`
	ImageURL     string                 `json:"image_url"`
}

// CreateQuestion godoc
// @Summary      Add a question to a question set
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question set ID"
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/question-sets/{id}/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	setID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question set id"})
		return
	}

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.bankService.AddQuestion(uint(setID), services.QuestionInput{
		QuestionText: req.QuestionText,
		Options:      req.Options,
		ChapterID:    req.ChapterID,
		TopicID:      req.TopicID,
		YoutubeLink:  req.YoutubeLink,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	if err := h.bankService.DeleteQuestion(uint(questionID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}

// UploadImage godoc
// @Summary      Upload a question image
// @Description  Stores the file under the question set's namespace and returns its public URL
// @Tags         questions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file"
// @Param        question_set_id formData int true "Question set ID"
// @Success      200 {object} map[string]string
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/upload [post]
func (h *QuestionHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file provided"})
		return
	}

	setID, err := strconv.ParseUint(c.PostForm("question_set_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question set id"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	imageExts := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	if !imageExts[ext] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file format"})
		return
	}

	if file.Size > 10<<20 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large (max 10MB)"})
		return
	}

	// Namespacing by set plus a random name keeps concurrent uploads from
	// colliding.
	filename := uuid.NewString() + ext
	relative := filepath.Join(strconv.FormatUint(setID, 10), filename)
	dst := filepath.Join(h.uploadDir, relative)

	os.MkdirAll(filepath.Dir(dst), 0755)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": fmt.Sprintf("/uploads/%d/%s", setID, filename)})
}
