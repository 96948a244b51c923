package handlers

import (
	"errors"
	"net/http"

	"github.com/brightops/campaign-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// trackingPixel is a 1x1 transparent GIF.
var trackingPixel = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, // GIF89a
	0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xff, 0xff, 0xff,
	0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00,
	0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
	0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// TrackingHandler handles open-beacon and click-redirect requests
type TrackingHandler struct {
	trackingService services.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(trackingService services.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// Open handles GET /track/open/:campaignId/:contactId. It responds 404 when
// the campaign or contact is missing and otherwise always serves the pixel,
// even when internal recording fails.
func (h *TrackingHandler) Open(c *gin.Context) {
	campaignID, err := primitive.ObjectIDFromHex(c.Param("campaignId"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	contactID, err := primitive.ObjectIDFromHex(c.Param("contactId"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	err = h.trackingService.RecordOpen(c.Request.Context(), campaignID, contactID, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil && errors.Is(err, services.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "image/gif", trackingPixel)
}

// Click handles GET /track/click/:campaignId/:contactId?redirect=. It records
// the click and redirects the requester to the original target.
func (h *TrackingHandler) Click(c *gin.Context) {
	campaignID, err := primitive.ObjectIDFromHex(c.Param("campaignId"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	contactID, err := primitive.ObjectIDFromHex(c.Param("contactId"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	target, err := h.trackingService.RecordClick(c.Request.Context(), campaignID, contactID, c.Query("redirect"), c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRedirect):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing redirect URL"})
		case errors.Is(err, services.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record click"})
		}
		return
	}

	c.Redirect(http.StatusFound, target)
}
