package delivery

import (
	"net/http"

	emaildto "ai-email-assistant/internal/email/dto"
	"ai-email-assistant/internal/email/usecase"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase) *EmailHandler {
	return &EmailHandler{
		emailUsecase: emailUsecase,
	}
}

func (h *EmailHandler) Generate(c *gin.Context) {
	var req emaildto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	resp, err := h.emailUsecase.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *EmailHandler) GenerateApplication(c *gin.Context) {
	var req emaildto.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	resp, err := h.emailUsecase.GenerateApplication(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *EmailHandler) Send(c *gin.Context) {
	var req emaildto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	if err := h.emailUsecase.Send(c.Request.Context(), userID, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}

func (h *EmailHandler) AnalyzeTone(c *gin.Context) {
	var req emaildto.AnalyzeToneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.emailUsecase.AnalyzeTone(req.Text))
}

func (h *EmailHandler) Tones(c *gin.Context) {
	c.JSON(http.StatusOK, h.emailUsecase.Tones(c.Query("q")))
}

func (h *EmailHandler) History(c *gin.Context) {
	userID := c.GetString("userID")
	resp, err := h.emailUsecase.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *EmailHandler) ExportPDF(c *gin.Context) {
	userID := c.GetString("userID")
	emailID := c.Param("id")

	buf, filename, err := h.emailUsecase.ExportPDF(c.Request.Context(), userID, emailID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if buf == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf)
}

func (h *EmailHandler) Stats(c *gin.Context) {
	userID := c.GetString("userID")
	resp, err := h.emailUsecase.Stats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
