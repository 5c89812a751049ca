package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airportbooking/internal/service/feedback"
	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	service feedback.FeedbackUseCase
}

type feedbackRequest struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

func NewFeedbackHandler(service feedback.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.submit)
}

func (h *FeedbackHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/", h.listAll)
}

func (h *FeedbackHandler) submit(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.service.Submit(c.Request.Context(), req.Username, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, feedback.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *FeedbackHandler) listAll(c *gin.Context) {
	entries, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
