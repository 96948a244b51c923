package services

import (
	"context"
	"errors"

	"github.com/brightops/campaign-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Domain outcomes and configuration errors shared across services.
var (
	// ErrPoolExhausted signals that no sender identity from the current scan
	// position onward has remaining daily capacity. It is a pause signal, not
	// a failure.
	ErrPoolExhausted = errors.New("sender pool exhausted")

	ErrNotFound           = errors.New("not found")
	ErrCampaignRunning    = errors.New("campaign is already running")
	ErrCampaignCompleted  = errors.New("campaign is already completed")
	ErrNoContacts         = errors.New("campaign has no target contacts")
	ErrNoSenders          = errors.New("campaign has no sender identities")
	ErrCampaignReferenced = errors.New("campaign is referenced by delivery logs")
	ErrInvalidStatus      = errors.New("invalid campaign status")
	ErrInvalidRedirect    = errors.New("missing or invalid redirect URL")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email is already registered")
)

// DispatchResult describes the outcome of one dispatch pass over a campaign.
type DispatchResult struct {
	CampaignID     primitive.ObjectID `json:"campaignId"`
	Status         string             `json:"status"`
	SentCount      int                `json:"sentCount"`
	DeliveredCount int                `json:"deliveredCount"`
	BouncedCount   int                `json:"bouncedCount"`
	Paused         bool               `json:"paused"`
}

// CampaignService defines the interface for campaign operations
type CampaignService interface {
	CreateCampaign(ctx context.Context, campaign *models.Campaign) error
	GetCampaignByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	GetAllCampaigns(ctx context.Context, page, limit int) ([]models.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign *models.Campaign) error
	DeleteCampaign(ctx context.Context, id primitive.ObjectID) error
	GetCampaignCount(ctx context.Context) (int64, error)
	// StartCampaign runs the dispatch loop to completion or pool exhaustion.
	StartCampaign(ctx context.Context, id primitive.ObjectID) (*DispatchResult, error)
	// UpdateStatus is the administrative status override. Every call is audited
	// with a before/after snapshot.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status, actor string) (*models.Campaign, error)
	GetDeliveryLogs(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.DeliveryLog, error)
	GetMessages(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.Message, error)
	StartDueCampaigns(ctx context.Context)
}

// TemplateService defines the interface for template operations
type TemplateService interface {
	CreateTemplate(ctx context.Context, template *models.Template) error
	GetTemplateByID(ctx context.Context, id primitive.ObjectID) (*models.Template, error)
	GetAllTemplates(ctx context.Context, page, limit int) ([]*models.Template, error)
	UpdateTemplate(ctx context.Context, template *models.Template) error
	DeleteTemplate(ctx context.Context, id primitive.ObjectID) error
	Render(templateText string, contact *models.Contact) string
}

// SenderService defines the interface for sender identity operations
type SenderService interface {
	CreateSender(ctx context.Context, sender *models.SenderIdentity) error
	GetSenderByID(ctx context.Context, id primitive.ObjectID) (*models.SenderIdentity, error)
	GetAllSenders(ctx context.Context, page, limit int) ([]*models.SenderIdentity, error)
	UpdateSender(ctx context.Context, sender *models.SenderIdentity) error
	DeleteSender(ctx context.Context, id primitive.ObjectID) error
}

// ContactService defines the interface for contact operations
type ContactService interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	GetContactByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	GetAllContacts(ctx context.Context, page, limit int) ([]*models.Contact, error)
	UpdateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, id primitive.ObjectID) error
}

// TrackingService defines the interface for open/click tracking
type TrackingService interface {
	// RecordOpen registers a beacon hit. It returns ErrNotFound when the
	// campaign or contact is missing; enrichment and log failures are absorbed
	// so the caller can always serve the pixel.
	RecordOpen(ctx context.Context, campaignID, contactID primitive.ObjectID, ip, userAgent string) error
	// RecordClick registers a click and returns the decoded redirect target.
	RecordClick(ctx context.Context, campaignID, contactID primitive.ObjectID, redirectURL, ip, userAgent string) (string, error)
}

// AuthService defines the interface for operator authentication
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// GeoResolver resolves the country for a requester IP.
type GeoResolver interface {
	Country(ctx context.Context, ip string) string
}
