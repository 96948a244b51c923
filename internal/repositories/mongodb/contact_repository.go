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

// ContactRepository implements the repositories.ContactRepository interface
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *mongo.Database) repositories.ContactRepository {
	return &ContactRepository{
		collection: db.Collection("contacts"),
	}
}

// FindByID finds a contact by ID
func (r *ContactRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var contact models.Contact
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// FindByIDs finds contacts preserving the order of the given IDs. The
// campaign's contact array order is the dispatch order, so it must survive
// the fetch.
func (r *ContactRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Contact, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fetched []*models.Contact
	if err := cursor.All(ctx, &fetched); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*models.Contact, len(fetched))
	for _, c := range fetched {
		byID[c.ID] = c
	}

	contacts := make([]*models.Contact, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			contacts = append(contacts, c)
		}
	}
	return contacts, nil
}

// FindAll finds all contacts with pagination
func (r *ContactRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Contact, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"email": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []*models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// Create creates a new contact
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if contact.ID.IsZero() {
		contact.ID = primitive.NewObjectID()
	}
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, contact)
	return err
}

// Update updates a contact
func (r *ContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	contact.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": contact.ID}, contact)
	return err
}

// Delete deletes a contact
func (r *ContactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count counts all contacts
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
