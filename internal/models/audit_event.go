package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditEvent records an administrative mutation with explicit before/after
// snapshots. The snapshot pair is always supplied by the caller, which fetches
// the entity before mutating it.
type AuditEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EntityType string             `bson:"entityType" json:"entityType"`
	EntityID   primitive.ObjectID `bson:"entityId" json:"entityId"`
	Action     string             `bson:"action" json:"action"`
	Actor      string             `bson:"actor,omitempty" json:"actor,omitempty"`
	Before     interface{}        `bson:"before,omitempty" json:"before,omitempty"`
	After      interface{}        `bson:"after,omitempty" json:"after,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
