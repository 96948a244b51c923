package handlers

import (
	"net/http"
	"strconv"

	"github.com/brightops/campaign-backend/internal/models"
	"github.com/brightops/campaign-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SenderHandler handles sender identity HTTP requests
type SenderHandler struct {
	senderService services.SenderService
}

// NewSenderHandler creates a new SenderHandler
func NewSenderHandler(senderService services.SenderService) *SenderHandler {
	return &SenderHandler{
		senderService: senderService,
	}
}

// CreateSender handles POST /senders
func (h *SenderHandler) CreateSender(c *gin.Context) {
	var sender models.SenderIdentity
	if err := c.ShouldBindJSON(&sender); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.senderService.CreateSender(c.Request.Context(), &sender); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sender"})
		return
	}

	c.JSON(http.StatusCreated, sender)
}

// GetSenderByID handles GET /senders/:id
func (h *SenderHandler) GetSenderByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	sender, err := h.senderService.GetSenderByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sender not found"})
		return
	}

	c.JSON(http.StatusOK, sender)
}

// GetAllSenders handles GET /senders
func (h *SenderHandler) GetAllSenders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	senders, err := h.senderService.GetAllSenders(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get senders"})
		return
	}

	c.JSON(http.StatusOK, senders)
}

// UpdateSender handles PUT /senders/:id
func (h *SenderHandler) UpdateSender(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var sender models.SenderIdentity
	if err := c.ShouldBindJSON(&sender); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sender.ID = id

	if err := h.senderService.UpdateSender(c.Request.Context(), &sender); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sender"})
		return
	}

	c.JSON(http.StatusOK, sender)
}

// DeleteSender handles DELETE /senders/:id
func (h *SenderHandler) DeleteSender(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.senderService.DeleteSender(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sender"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sender deleted"})
}
