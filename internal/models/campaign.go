package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign lifecycle statuses
const (
	CampaignStatusDraft     = "DRAFT"
	CampaignStatusScheduled = "SCHEDULED"
	CampaignStatusRunning   = "RUNNING"
	CampaignStatusPaused    = "PAUSED"
	CampaignStatusCompleted = "COMPLETED"
)

// Campaign represents a bulk email campaign: one template, an ordered list of
// target contacts and a pool of sender identities rotated across during the run.
type Campaign struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	TemplateID  primitive.ObjectID   `bson:"templateId" json:"templateId"`
	ContactIDs  []primitive.ObjectID `bson:"contactIds" json:"contactIds"`
	SenderIDs   []primitive.ObjectID `bson:"senderIds" json:"senderIds"`
	Status      string               `bson:"status" json:"status"` // DRAFT, SCHEDULED, RUNNING, PAUSED, COMPLETED

	// Counters. SentCount counts attempts, so SentCount = DeliveredCount + BouncedCount
	// after any completed dispatch pass.
	SentCount      int `bson:"sentCount" json:"sentCount"`
	DeliveredCount int `bson:"deliveredCount" json:"deliveredCount"`
	BouncedCount   int `bson:"bouncedCount" json:"bouncedCount"`
	// OpenCount increments on every beacon hit, while OpenedBy stays unique per
	// contact. The asymmetry is deliberate (unique opens vs raw opens).
	OpenCount int                  `bson:"openCount" json:"openCount"`
	OpenedBy  []primitive.ObjectID `bson:"openedBy" json:"openedBy"`
	ClickedBy []primitive.ObjectID `bson:"clickedBy" json:"clickedBy"`

	// LastProcessedIndex is the resume cursor: the number of contacts already
	// attempted in this campaign. A paused campaign restarts from here.
	LastProcessedIndex int `bson:"lastProcessedIndex" json:"lastProcessedIndex"`

	ScheduledAt time.Time `bson:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	StartedAt   time.Time `bson:"startedAt,omitempty" json:"startedAt,omitempty"`
	CompletedAt time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedBy   string    `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasOpened reports whether the contact is already in the opened set.
func (c *Campaign) HasOpened(contactID primitive.ObjectID) bool {
	for _, id := range c.OpenedBy {
		if id == contactID {
			return true
		}
	}
	return false
}
