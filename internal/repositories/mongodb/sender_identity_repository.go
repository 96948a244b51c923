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

// SenderIdentityRepository implements the repositories.SenderIdentityRepository interface
type SenderIdentityRepository struct {
	collection *mongo.Collection
}

// NewSenderIdentityRepository creates a new SenderIdentityRepository
func NewSenderIdentityRepository(db *mongo.Database) repositories.SenderIdentityRepository {
	return &SenderIdentityRepository{
		collection: db.Collection("sender_identities"),
	}
}

// FindByID finds a sender identity by ID
func (r *SenderIdentityRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SenderIdentity, error) {
	var sender models.SenderIdentity
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sender)
	if err != nil {
		return nil, err
	}
	return &sender, nil
}

// FindByIDs finds sender identities preserving the order of the given IDs.
// The campaign's sender array order is the rotation order, so it must survive
// the fetch.
func (r *SenderIdentityRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.SenderIdentity, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fetched []*models.SenderIdentity
	if err := cursor.All(ctx, &fetched); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*models.SenderIdentity, len(fetched))
	for _, s := range fetched {
		byID[s.ID] = s
	}

	senders := make([]*models.SenderIdentity, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			senders = append(senders, s)
		}
	}
	return senders, nil
}

// FindAll finds all sender identities with pagination
func (r *SenderIdentityRepository) FindAll(ctx context.Context, page, limit int) ([]*models.SenderIdentity, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"name": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var senders []*models.SenderIdentity
	if err := cursor.All(ctx, &senders); err != nil {
		return nil, err
	}
	return senders, nil
}

// Create creates a new sender identity
func (r *SenderIdentityRepository) Create(ctx context.Context, sender *models.SenderIdentity) error {
	if sender.ID.IsZero() {
		sender.ID = primitive.NewObjectID()
	}
	sender.CreatedAt = time.Now()
	sender.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, sender)
	return err
}

// Update updates a sender identity
func (r *SenderIdentityRepository) Update(ctx context.Context, sender *models.SenderIdentity) error {
	sender.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": sender.ID}, sender)
	return err
}

// Delete deletes a sender identity
func (r *SenderIdentityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count counts all sender identities
func (r *SenderIdentityRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
