package services

import (
	"context"

	"github.com/brightops/campaign-backend/internal/models"
	"github.com/brightops/campaign-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure contactService implements ContactService
var _ ContactService = (*contactService)(nil)

type contactService struct {
	contactRepo repositories.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) CreateContact(ctx context.Context, contact *models.Contact) error {
	return s.contactRepo.Create(ctx, contact)
}

func (s *contactService) GetContactByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	return s.contactRepo.FindByID(ctx, id)
}

func (s *contactService) GetAllContacts(ctx context.Context, page, limit int) ([]*models.Contact, error) {
	return s.contactRepo.FindAll(ctx, page, limit)
}

func (s *contactService) UpdateContact(ctx context.Context, contact *models.Contact) error {
	return s.contactRepo.Update(ctx, contact)
}

func (s *contactService) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	return s.contactRepo.Delete(ctx, id)
}
