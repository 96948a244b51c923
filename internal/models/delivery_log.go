package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Delivery log statuses
const (
	DeliveryStatusQueued       = "QUEUED"
	DeliveryStatusSent         = "SENT"
	DeliveryStatusFailed       = "FAILED"
	DeliveryStatusBounced      = "BOUNCED"
	DeliveryStatusOpened       = "OPENED"
	DeliveryStatusClicked      = "CLICKED"
	DeliveryStatusUnsubscribed = "UNSUBSCRIBED"
	DeliveryStatusReceived     = "RECEIVED"
)

// DeliveryLog is an append-only record of a delivery or engagement event.
// A message can accumulate several entries over its lifetime (sent, opened,
// clicked, ...).
type DeliveryLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MessageID  primitive.ObjectID `bson:"messageId,omitempty" json:"messageId,omitempty"`
	CampaignID primitive.ObjectID `bson:"campaignId" json:"campaignId"`
	ContactID  primitive.ObjectID `bson:"contactId" json:"contactId"`

	Status       string `bson:"status" json:"status"`
	BounceReason string `bson:"bounceReason,omitempty" json:"bounceReason,omitempty"`
	ErrorMessage string `bson:"errorMessage,omitempty" json:"errorMessage,omitempty"`

	// Engagement enrichment, populated for OPENED/CLICKED entries.
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
	DeviceType string `bson:"deviceType,omitempty" json:"deviceType,omitempty"`
	Client     string `bson:"client,omitempty" json:"client,omitempty"`
	URL        string `bson:"url,omitempty" json:"url,omitempty"`
	IPAddress  string `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`

	SentAt    time.Time `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
