package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/brightops/campaign-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubTrackingService returns canned results so the handler's HTTP behavior
// can be tested in isolation.
type stubTrackingService struct {
	openErr  error
	clickErr error
}

func (s *stubTrackingService) RecordOpen(ctx context.Context, campaignID, contactID primitive.ObjectID, ip, userAgent string) error {
	return s.openErr
}

func (s *stubTrackingService) RecordClick(ctx context.Context, campaignID, contactID primitive.ObjectID, redirectURL, ip, userAgent string) (string, error) {
	if s.clickErr != nil {
		return "", s.clickErr
	}
	return redirectURL, nil
}

func trackingRouter(svc services.TrackingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewTrackingHandler(svc)
	router.GET("/track/open/:campaignId/:contactId", handler.Open)
	router.GET("/track/click/:campaignId/:contactId", handler.Click)
	return router
}

func TestOpenServesPixel(t *testing.T) {
	router := trackingRouter(&stubTrackingService{})

	path := fmt.Sprintf("/track/open/%s/%s", primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/gif" {
		t.Errorf("content type = %s, want image/gif", ct)
	}
	if !bytes.Equal(w.Body.Bytes(), trackingPixel) {
		t.Error("body is not the tracking pixel")
	}
}

func TestOpenServesPixelDespiteInternalError(t *testing.T) {
	// The recipient's mail client must get its image even when recording
	// blows up internally.
	router := trackingRouter(&stubTrackingService{openErr: errors.New("db down")})

	path := fmt.Sprintf("/track/open/%s/%s", primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !bytes.Equal(w.Body.Bytes(), trackingPixel) {
		t.Error("body is not the tracking pixel")
	}
}

func TestOpenUnknownCampaign(t *testing.T) {
	router := trackingRouter(&stubTrackingService{openErr: fmt.Errorf("campaign x: %w", services.ErrNotFound)})

	path := fmt.Sprintf("/track/open/%s/%s", primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestOpenMalformedIDs(t *testing.T) {
	router := trackingRouter(&stubTrackingService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track/open/not-hex/also-not-hex", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestClickRedirects(t *testing.T) {
	router := trackingRouter(&stubTrackingService{})

	target := "https://example.com/offer?x=1"
	path := fmt.Sprintf("/track/click/%s/%s?redirect=%s",
		primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), url.QueryEscape(target))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != target {
		t.Errorf("location = %s, want %s", loc, target)
	}
}

func TestClickMissingRedirect(t *testing.T) {
	router := trackingRouter(&stubTrackingService{clickErr: services.ErrInvalidRedirect})

	path := fmt.Sprintf("/track/click/%s/%s", primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestClickUnknownContact(t *testing.T) {
	router := trackingRouter(&stubTrackingService{clickErr: fmt.Errorf("contact x: %w", services.ErrNotFound)})

	path := fmt.Sprintf("/track/click/%s/%s?redirect=https%%3A%%2F%%2Fexample.com",
		primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
