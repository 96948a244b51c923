package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SenderIdentity is an outbound mail account with its own SMTP credentials and
// daily send quota. EmailsSentToday is reset externally by a daily cron.
type SenderIdentity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	FromEmail string             `bson:"fromEmail" json:"fromEmail"`

	Host     string `bson:"host" json:"host"`
	Port     int    `bson:"port" json:"port"`
	Username string `bson:"username" json:"username"`
	Password string `bson:"password" json:"-"`

	MaxDailyLimit   int  `bson:"maxDailyLimit" json:"maxDailyLimit"`
	EmailsSentToday int  `bson:"emailsSentToday" json:"emailsSentToday"`
	IsActive        bool `bson:"isActive" json:"isActive"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasCapacity reports whether the identity can send at least one more message today.
func (s *SenderIdentity) HasCapacity() bool {
	return s.IsActive && s.EmailsSentToday < s.MaxDailyLimit
}
