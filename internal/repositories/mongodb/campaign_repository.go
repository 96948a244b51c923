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

// CampaignRepository implements the repositories.CampaignRepository interface
type CampaignRepository struct {
	collection *mongo.Collection
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *mongo.Database) repositories.CampaignRepository {
	return &CampaignRepository{
		collection: db.Collection("campaigns"),
	}
}

// FindByID finds a campaign by ID
func (r *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// FindAll finds all campaigns with pagination
func (r *CampaignRepository) FindAll(ctx context.Context, page, limit int) ([]models.Campaign, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return campaigns, nil
}

// FindDueScheduled finds scheduled campaigns whose scheduled time has passed
func (r *CampaignRepository) FindDueScheduled(ctx context.Context, now time.Time) ([]*models.Campaign, error) {
	filter := bson.M{
		"status":      models.CampaignStatusScheduled,
		"scheduledAt": bson.M{"$lte": now},
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"scheduledAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []*models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Create creates a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	if campaign.ID.IsZero() {
		campaign.ID = primitive.NewObjectID()
	}
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, campaign)
	return err
}

// Update updates a campaign
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	campaign.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": campaign.ID}, campaign)
	return err
}

// Delete deletes a campaign
func (r *CampaignRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count counts all campaigns
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// RecordOpen adds the contact to the opened set and increments the raw open
// counter. The set stays unique while the counter grows on every hit, so both
// unique and repeated opens are observable.
func (r *CampaignRepository) RecordOpen(ctx context.Context, id, contactID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"openedBy": contactID},
		"$inc":      bson.M{"openCount": 1},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RecordClick adds the contact to the clicked set
func (r *CampaignRepository) RecordClick(ctx context.Context, id, contactID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"clickedBy": contactID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
