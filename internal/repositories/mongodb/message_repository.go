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

// MessageRepository implements the repositories.MessageRepository interface
type MessageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *mongo.Database) repositories.MessageRepository {
	return &MessageRepository{
		collection: db.Collection("messages"),
	}
}

// Create creates a new message record
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	message.CreatedAt = time.Now()
	message.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, message)
	return err
}

// FindByID finds a message by ID
func (r *MessageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	var message models.Message
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&message)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// FindByCampaignID finds messages by campaign ID with pagination
func (r *MessageRepository) FindByCampaignID(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.Message, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"campaignId": campaignID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// CountByCampaignID counts messages produced for a campaign
func (r *MessageRepository) CountByCampaignID(ctx context.Context, campaignID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"campaignId": campaignID})
}
