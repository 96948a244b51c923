package repositories

import (
	"context"
	"time"

	"github.com/brightops/campaign-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignRepository defines the interface for campaign data access
type CampaignRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Campaign, error)
	FindDueScheduled(ctx context.Context, now time.Time) ([]*models.Campaign, error)
	Create(ctx context.Context, campaign *models.Campaign) error
	Update(ctx context.Context, campaign *models.Campaign) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	// RecordOpen adds the contact to the opened set (idempotent) and
	// unconditionally increments the raw open counter, in one atomic update.
	RecordOpen(ctx context.Context, id, contactID primitive.ObjectID) error
	// RecordClick adds the contact to the clicked set (idempotent).
	RecordClick(ctx context.Context, id, contactID primitive.ObjectID) error
}

// TemplateRepository defines the interface for template data access
type TemplateRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Template, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Template, error)
	Create(ctx context.Context, template *models.Template) error
	Update(ctx context.Context, template *models.Template) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// SenderIdentityRepository defines the interface for sender identity data access
type SenderIdentityRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SenderIdentity, error)
	// FindByIDs returns identities in the order of the given IDs.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.SenderIdentity, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.SenderIdentity, error)
	Create(ctx context.Context, sender *models.SenderIdentity) error
	Update(ctx context.Context, sender *models.SenderIdentity) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	// FindByIDs returns contacts in the order of the given IDs.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Contact, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
	FindByCampaignID(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.Message, error)
	CountByCampaignID(ctx context.Context, campaignID primitive.ObjectID) (int64, error)
}

// DeliveryLogRepository defines the interface for the append-only delivery log
type DeliveryLogRepository interface {
	Create(ctx context.Context, entry *models.DeliveryLog) error
	FindByCampaignID(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.DeliveryLog, error)
	CountByCampaignID(ctx context.Context, campaignID primitive.ObjectID) (int64, error)
}

// AuditEventRepository defines the interface for audit event data access
type AuditEventRepository interface {
	Create(ctx context.Context, event *models.AuditEvent) error
	FindByEntityID(ctx context.Context, entityID primitive.ObjectID, page, limit int) ([]*models.AuditEvent, error)
}

// UserRepository defines the interface for operator account data access
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
