package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/brightops/campaign-backend/internal/models"
	"github.com/brightops/campaign-backend/internal/repositories"
	"github.com/brightops/campaign-backend/pkg/mailer"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure campaignService implements CampaignService
var _ CampaignService = (*campaignService)(nil)

// campaignService owns the campaign lifecycle and the dispatch loop
type campaignService struct {
	campaignRepo repositories.CampaignRepository
	templateRepo repositories.TemplateRepository
	contactRepo  repositories.ContactRepository
	senderRepo   repositories.SenderIdentityRepository
	messageRepo  repositories.MessageRepository
	logRepo      repositories.DeliveryLogRepository
	auditRepo    repositories.AuditEventRepository
	transport    mailer.Transport

	trackingBaseURL string
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(
	campaignRepo repositories.CampaignRepository,
	templateRepo repositories.TemplateRepository,
	contactRepo repositories.ContactRepository,
	senderRepo repositories.SenderIdentityRepository,
	messageRepo repositories.MessageRepository,
	logRepo repositories.DeliveryLogRepository,
	auditRepo repositories.AuditEventRepository,
	transport mailer.Transport,
	trackingBaseURL string,
) CampaignService {
	return &campaignService{
		campaignRepo:    campaignRepo,
		templateRepo:    templateRepo,
		contactRepo:     contactRepo,
		senderRepo:      senderRepo,
		messageRepo:     messageRepo,
		logRepo:         logRepo,
		auditRepo:       auditRepo,
		transport:       transport,
		trackingBaseURL: trackingBaseURL,
	}
}

// StartCampaign runs one dispatch pass: contacts are processed strictly in
// array order, one at a time, rotating through the sender pool with a
// forward-only pointer. The pass ends COMPLETED when every contact has been
// attempted, or PAUSED when the pool runs out of daily capacity. Exhaustion is
// a first-class outcome, not an error.
func (s *campaignService) StartCampaign(ctx context.Context, id primitive.ObjectID) (*DispatchResult, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("campaign %s: %w", id.Hex(), ErrNotFound)
	}

	switch campaign.Status {
	case models.CampaignStatusRunning:
		return nil, ErrCampaignRunning
	case models.CampaignStatusCompleted:
		return nil, ErrCampaignCompleted
	}

	// Configuration errors: nothing is mutated before these checks pass.
	if len(campaign.ContactIDs) == 0 {
		return nil, ErrNoContacts
	}
	if len(campaign.SenderIDs) == 0 {
		return nil, ErrNoSenders
	}
	template, err := s.templateRepo.FindByID(ctx, campaign.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", campaign.TemplateID.Hex(), ErrNotFound)
	}
	contacts, err := s.contactRepo.FindByIDs(ctx, campaign.ContactIDs)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	senders, err := s.senderRepo.FindByIDs(ctx, campaign.SenderIDs)
	if err != nil {
		return nil, fmt.Errorf("load senders: %w", err)
	}
	if len(contacts) == 0 {
		return nil, ErrNoContacts
	}
	if len(senders) == 0 {
		return nil, ErrNoSenders
	}

	// A paused campaign resumes from its cursor; a fresh start begins at zero.
	start := 0
	if campaign.Status == models.CampaignStatusPaused {
		start = campaign.LastProcessedIndex
	}

	campaign.Status = models.CampaignStatusRunning
	campaign.LastProcessedIndex = start
	if campaign.StartedAt.IsZero() {
		campaign.StartedAt = time.Now()
	}
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("persist running status: %w", err)
	}

	activeSenderIndex := 0
	for i := start; i < len(contacts); i++ {
		// Cancellation is honored only between contacts, so the per-contact
		// persist sequence is never torn.
		if ctx.Err() != nil {
			log.Printf("[WARN] campaign %s: dispatch cancelled at contact %d", campaign.ID.Hex(), i)
			return s.pause(context.Background(), campaign)
		}

		idx, err := nextEligibleSender(senders, activeSenderIndex)
		if err != nil {
			// Pool exhausted: pause. Contacts from index i on are never
			// attempted in this pass.
			return s.pause(ctx, campaign)
		}
		activeSenderIndex = idx
		sender := senders[idx]
		contact := contacts[i]

		delivered := s.dispatchOne(ctx, campaign, template, contact, sender)

		// A failed send still counts as sent: "sent" means attempted.
		campaign.SentCount++
		if delivered {
			campaign.DeliveredCount++
		} else {
			campaign.BouncedCount++
		}

		sender.EmailsSentToday++
		if err := s.senderRepo.Update(ctx, sender); err != nil {
			log.Printf("[ERROR] campaign %s: persist sender %s counter: %v", campaign.ID.Hex(), sender.ID.Hex(), err)
		}

		// Persist counters and cursor before moving on, so a crash leaves
		// state consistent with contacts actually attempted.
		campaign.LastProcessedIndex = i + 1
		if err := s.campaignRepo.Update(ctx, campaign); err != nil {
			log.Printf("[ERROR] campaign %s: persist counters: %v", campaign.ID.Hex(), err)
		}
	}

	campaign.Status = models.CampaignStatusCompleted
	campaign.CompletedAt = time.Now()
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("persist completed status: %w", err)
	}

	return s.result(campaign), nil
}

// dispatchOne personalizes, tracks and sends one message, recording the
// Message and DeliveryLog pair on both outcomes. It reports whether the send
// was delivered; any error stays local so one recipient never aborts the run.
func (s *campaignService) dispatchOne(ctx context.Context, campaign *models.Campaign, template *models.Template, contact *models.Contact, sender *models.SenderIdentity) bool {
	subject := RenderTemplate(template.Subject, contact)
	body := RenderTemplate(template.Body, contact)
	if template.TrackingEnabled {
		body = RewriteLinks(body, s.trackingBaseURL, campaign.ID, contact.ID)
		body = InjectOpenPixel(body, s.trackingBaseURL, campaign.ID, contact.ID)
	}

	message := &models.Message{
		CampaignID: campaign.ID,
		ContactID:  contact.ID,
		TemplateID: template.ID,
		SenderID:   sender.ID,
		Recipient:  contact.Email,
		Subject:    subject,
		Body:       body,
	}
	entry := &models.DeliveryLog{
		CampaignID: campaign.ID,
		ContactID:  contact.ID,
	}

	messageID, err := s.transport.Send(ctx, sender, contact.Email, subject, body)
	now := time.Now()
	delivered := err == nil
	if delivered {
		message.Status = models.MessageStatusSent
		message.MessageID = messageID
		message.SentAt = now
		entry.Status = models.DeliveryStatusSent
		entry.SentAt = now
	} else {
		log.Printf("[WARN] campaign %s: send to %s failed: %v", campaign.ID.Hex(), contact.Email, err)
		message.Status = models.MessageStatusFailed
		message.ErrorMessage = err.Error()
		entry.Status = models.DeliveryStatusFailed
		entry.BounceReason = err.Error()
	}

	// The Message record is written exactly once per attempt, even on failure.
	if err := s.messageRepo.Create(ctx, message); err != nil {
		log.Printf("[ERROR] campaign %s: persist message for %s: %v", campaign.ID.Hex(), contact.Email, err)
	}
	entry.MessageID = message.ID
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("[ERROR] campaign %s: persist delivery log for %s: %v", campaign.ID.Hex(), contact.Email, err)
	}

	return delivered
}

// pause persists the PAUSED status and returns the partial result
func (s *campaignService) pause(ctx context.Context, campaign *models.Campaign) (*DispatchResult, error) {
	campaign.Status = models.CampaignStatusPaused
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("persist paused status: %w", err)
	}
	return s.result(campaign), nil
}

func (s *campaignService) result(campaign *models.Campaign) *DispatchResult {
	return &DispatchResult{
		CampaignID:     campaign.ID,
		Status:         campaign.Status,
		SentCount:      campaign.SentCount,
		DeliveredCount: campaign.DeliveredCount,
		BouncedCount:   campaign.BouncedCount,
		Paused:         campaign.Status == models.CampaignStatusPaused,
	}
}

// StartDueCampaigns starts every scheduled campaign whose time has come.
// Called by the scheduler tick.
func (s *campaignService) StartDueCampaigns(ctx context.Context) {
	due, err := s.campaignRepo.FindDueScheduled(ctx, time.Now())
	if err != nil {
		log.Printf("[ERROR] scheduler: find due campaigns: %v", err)
		return
	}
	for _, campaign := range due {
		result, err := s.StartCampaign(ctx, campaign.ID)
		if err != nil {
			log.Printf("[ERROR] scheduler: start campaign %s: %v", campaign.ID.Hex(), err)
			continue
		}
		log.Printf("scheduler: campaign %s finished with status %s (sent=%d)", campaign.ID.Hex(), result.Status, result.SentCount)
	}
}

// CreateCampaign creates a new campaign
func (s *campaignService) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	if campaign.Status == "" {
		if !campaign.ScheduledAt.IsZero() {
			campaign.Status = models.CampaignStatusScheduled
		} else {
			campaign.Status = models.CampaignStatusDraft
		}
	}
	return s.campaignRepo.Create(ctx, campaign)
}

// GetCampaignByID retrieves a campaign by ID
func (s *campaignService) GetCampaignByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("campaign %s: %w", id.Hex(), ErrNotFound)
	}
	return campaign, nil
}

// GetAllCampaigns retrieves all campaigns with pagination
func (s *campaignService) GetAllCampaigns(ctx context.Context, page, limit int) ([]models.Campaign, error) {
	return s.campaignRepo.FindAll(ctx, page, limit)
}

// UpdateCampaign updates a campaign
func (s *campaignService) UpdateCampaign(ctx context.Context, campaign *models.Campaign) error {
	return s.campaignRepo.Update(ctx, campaign)
}

// DeleteCampaign deletes a campaign unless delivery logs still reference it
func (s *campaignService) DeleteCampaign(ctx context.Context, id primitive.ObjectID) error {
	count, err := s.logRepo.CountByCampaignID(ctx, id)
	if err != nil {
		return fmt.Errorf("count delivery logs: %w", err)
	}
	if count > 0 {
		return ErrCampaignReferenced
	}
	return s.campaignRepo.Delete(ctx, id)
}

// GetCampaignCount gets the total number of campaigns
func (s *campaignService) GetCampaignCount(ctx context.Context) (int64, error) {
	return s.campaignRepo.Count(ctx)
}

var validStatuses = map[string]bool{
	models.CampaignStatusDraft:     true,
	models.CampaignStatusScheduled: true,
	models.CampaignStatusRunning:   true,
	models.CampaignStatusPaused:    true,
	models.CampaignStatusCompleted: true,
}

// UpdateStatus is the administrative status override. The write itself is
// unguarded against the state machine, but the before-snapshot is fetched
// explicitly and recorded with the post-mutation state in the audit log.
func (s *campaignService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, actor string) (*models.Campaign, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("campaign %s: %w", id.Hex(), ErrNotFound)
	}
	before := *campaign

	campaign.Status = status
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("persist status override: %w", err)
	}

	event := &models.AuditEvent{
		EntityType: "campaign",
		EntityID:   campaign.ID,
		Action:     "status_override",
		Actor:      actor,
		Before:     before,
		After:      *campaign,
	}
	if err := s.auditRepo.Create(ctx, event); err != nil {
		log.Printf("[ERROR] campaign %s: persist audit event: %v", campaign.ID.Hex(), err)
	}

	return campaign, nil
}

// GetDeliveryLogs retrieves delivery log entries for a campaign
func (s *campaignService) GetDeliveryLogs(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.DeliveryLog, error) {
	return s.logRepo.FindByCampaignID(ctx, campaignID, page, limit)
}

// GetMessages retrieves messages produced for a campaign
func (s *campaignService) GetMessages(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.Message, error) {
	return s.messageRepo.FindByCampaignID(ctx, campaignID, page, limit)
}

// IsConfigError reports whether the error is a configuration error for which
// the start endpoint should return a client error instead of 500.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrNoContacts) ||
		errors.Is(err, ErrNoSenders) ||
		errors.Is(err, ErrCampaignRunning) ||
		errors.Is(err, ErrCampaignCompleted)
}
