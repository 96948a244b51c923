package mongodb

import (
	"context"
	"time"

	"github.com/brightops/campaign-backend/internal/models"
	"github.com/brightops/campaign-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditEventRepository implements the repositories.AuditEventRepository interface
type AuditEventRepository struct {
	collection *mongo.Collection
}

// NewAuditEventRepository creates a new AuditEventRepository
func NewAuditEventRepository(db *mongo.Database) repositories.AuditEventRepository {
	return &AuditEventRepository{
		collection: db.Collection("audit_events"),
	}
}

// Create appends an audit event
func (r *AuditEventRepository) Create(ctx context.Context, event *models.AuditEvent) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	event.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// FindByEntityID finds audit events for an entity with pagination
func (r *AuditEventRepository) FindByEntityID(ctx context.Context, entityID primitive.ObjectID, page, limit int) ([]*models.AuditEvent, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"entityId": entityID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*models.AuditEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
