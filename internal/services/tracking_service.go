package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brightops/campaign-backend/internal/models"
	"github.com/brightops/campaign-backend/internal/repositories"
	"github.com/brightops/campaign-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure trackingService implements TrackingService
var _ TrackingService = (*trackingService)(nil)

// trackingService records open-beacon and click events
type trackingService struct {
	campaignRepo repositories.CampaignRepository
	contactRepo  repositories.ContactRepository
	logRepo      repositories.DeliveryLogRepository
	geo          GeoResolver
}

// NewTrackingService creates a new TrackingService
func NewTrackingService(
	campaignRepo repositories.CampaignRepository,
	contactRepo repositories.ContactRepository,
	logRepo repositories.DeliveryLogRepository,
	geo GeoResolver,
) TrackingService {
	return &trackingService{
		campaignRepo: campaignRepo,
		contactRepo:  contactRepo,
		logRepo:      logRepo,
		geo:          geo,
	}
}

// RecordOpen registers an open-beacon hit. The opened set stays unique per
// contact while the raw open counter increments on every hit. Enrichment and
// log failures are absorbed: only a missing campaign/contact is an error.
func (s *trackingService) RecordOpen(ctx context.Context, campaignID, contactID primitive.ObjectID, ip, userAgent string) error {
	if _, err := s.campaignRepo.FindByID(ctx, campaignID); err != nil {
		return fmt.Errorf("campaign %s: %w", campaignID.Hex(), ErrNotFound)
	}
	if _, err := s.contactRepo.FindByID(ctx, contactID); err != nil {
		return fmt.Errorf("contact %s: %w", contactID.Hex(), ErrNotFound)
	}

	if err := s.campaignRepo.RecordOpen(ctx, campaignID, contactID); err != nil {
		// The beacon response must still go out; the miss is only logged.
		log.Printf("[ERROR] tracking: record open on campaign %s: %v", campaignID.Hex(), err)
	}

	country := geoCountry(ctx, s.geo, ip)
	deviceType, client := utils.ParseUserAgent(userAgent)

	entry := &models.DeliveryLog{
		CampaignID: campaignID,
		ContactID:  contactID,
		Status:     models.DeliveryStatusOpened,
		Country:    country,
		DeviceType: deviceType,
		Client:     client,
		IPAddress:  ip,
		SentAt:     time.Now(),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("[ERROR] tracking: persist open log for campaign %s: %v", campaignID.Hex(), err)
	}

	return nil
}

// RecordClick registers a click event and returns the redirect target
func (s *trackingService) RecordClick(ctx context.Context, campaignID, contactID primitive.ObjectID, redirectURL, ip, userAgent string) (string, error) {
	if redirectURL == "" {
		return "", ErrInvalidRedirect
	}
	if _, err := s.campaignRepo.FindByID(ctx, campaignID); err != nil {
		return "", fmt.Errorf("campaign %s: %w", campaignID.Hex(), ErrNotFound)
	}
	if _, err := s.contactRepo.FindByID(ctx, contactID); err != nil {
		return "", fmt.Errorf("contact %s: %w", contactID.Hex(), ErrNotFound)
	}

	if err := s.campaignRepo.RecordClick(ctx, campaignID, contactID); err != nil {
		log.Printf("[ERROR] tracking: record click on campaign %s: %v", campaignID.Hex(), err)
	}

	country := geoCountry(ctx, s.geo, ip)
	deviceType, client := utils.ParseUserAgent(userAgent)

	entry := &models.DeliveryLog{
		CampaignID: campaignID,
		ContactID:  contactID,
		Status:     models.DeliveryStatusClicked,
		Country:    country,
		DeviceType: deviceType,
		Client:     client,
		URL:        redirectURL,
		IPAddress:  ip,
		SentAt:     time.Now(),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("[ERROR] tracking: persist click log for campaign %s: %v", campaignID.Hex(), err)
	}

	return redirectURL, nil
}

func geoCountry(ctx context.Context, geo GeoResolver, ip string) string {
	if geo == nil {
		return "Unknown"
	}
	return geo.Country(ctx, ip)
}
