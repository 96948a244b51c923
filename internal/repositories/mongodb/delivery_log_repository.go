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

// DeliveryLogRepository implements the repositories.DeliveryLogRepository
// interface. The collection is append-only; there is no update or delete.
type DeliveryLogRepository struct {
	collection *mongo.Collection
}

// NewDeliveryLogRepository creates a new DeliveryLogRepository
func NewDeliveryLogRepository(db *mongo.Database) repositories.DeliveryLogRepository {
	return &DeliveryLogRepository{
		collection: db.Collection("delivery_logs"),
	}
}

// Create appends a delivery log entry
func (r *DeliveryLogRepository) Create(ctx context.Context, entry *models.DeliveryLog) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	entry.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// FindByCampaignID finds delivery log entries by campaign ID with pagination
func (r *DeliveryLogRepository) FindByCampaignID(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.DeliveryLog, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"campaignId": campaignID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.DeliveryLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByCampaignID counts delivery log entries referencing a campaign
func (r *DeliveryLogRepository) CountByCampaignID(ctx context.Context, campaignID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"campaignId": campaignID})
}
