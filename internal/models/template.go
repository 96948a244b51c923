package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template represents an email template with recipient placeholders
// ({{firstName}}, {{lastName}}, {{email}}, {{country}}, {{language}}).
type Template struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Subject         string             `bson:"subject" json:"subject"`
	Body            string             `bson:"body" json:"body"`
	TrackingEnabled bool               `bson:"trackingEnabled" json:"trackingEnabled"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	CreatedBy       string             `bson:"createdBy" json:"createdBy"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
