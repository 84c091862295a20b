package delivery

import (
	"io"
	"net/http"

	resumedto "ai-email-assistant/internal/resume/dto"
	"ai-email-assistant/internal/resume/usecase"

	"github.com/gin-gonic/gin"
)

// Resume uploads are capped at 10MB.
const maxUploadSize = 10 << 20

type ResumeHandler struct {
	resumeUsecase usecase.ResumeUsecase
}

func NewResumeHandler(resumeUsecase usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{
		resumeUsecase: resumeUsecase,
	}
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	resume, err := h.resumeUsecase.Upload(userID, fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resumedto.UploadResponse{Resume: resume})
}

func (h *ResumeHandler) Match(c *gin.Context) {
	var req resumedto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	resp, err := h.resumeUsecase.Match(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ResumeHandler) List(c *gin.Context) {
	userID := c.GetString("userID")
	resumes, err := h.resumeUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resumedto.ListResponse{Resumes: resumes})
}
