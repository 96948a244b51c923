package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message statuses
const (
	MessageStatusSent   = "SENT"
	MessageStatusFailed = "FAILED"
)

// Message is the concrete personalized email produced for one
// (campaign, contact) pair. Exactly one is recorded per dispatch attempt,
// including failed attempts.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CampaignID primitive.ObjectID `bson:"campaignId" json:"campaignId"`
	ContactID  primitive.ObjectID `bson:"contactId" json:"contactId"`
	TemplateID primitive.ObjectID `bson:"templateId" json:"templateId"`
	SenderID   primitive.ObjectID `bson:"senderId" json:"senderId"`

	Recipient string `bson:"recipient" json:"recipient"`
	Subject   string `bson:"subject" json:"subject"`
	Body      string `bson:"body" json:"body"`

	Status       string    `bson:"status" json:"status"` // SENT, FAILED
	MessageID    string    `bson:"messageId,omitempty" json:"messageId,omitempty"`
	ErrorMessage string    `bson:"errorMessage,omitempty" json:"errorMessage,omitempty"`
	SentAt       time.Time `bson:"sentAt,omitempty" json:"sentAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
