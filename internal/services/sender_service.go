package services

import (
	"context"

	"github.com/brightops/campaign-backend/internal/models"
	"github.com/brightops/campaign-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure senderService implements SenderService
var _ SenderService = (*senderService)(nil)

type senderService struct {
	senderRepo repositories.SenderIdentityRepository
}

// NewSenderService creates a new SenderService
func NewSenderService(senderRepo repositories.SenderIdentityRepository) SenderService {
	return &senderService{senderRepo: senderRepo}
}

func (s *senderService) CreateSender(ctx context.Context, sender *models.SenderIdentity) error {
	return s.senderRepo.Create(ctx, sender)
}

func (s *senderService) GetSenderByID(ctx context.Context, id primitive.ObjectID) (*models.SenderIdentity, error) {
	return s.senderRepo.FindByID(ctx, id)
}

func (s *senderService) GetAllSenders(ctx context.Context, page, limit int) ([]*models.SenderIdentity, error) {
	return s.senderRepo.FindAll(ctx, page, limit)
}

func (s *senderService) UpdateSender(ctx context.Context, sender *models.SenderIdentity) error {
	return s.senderRepo.Update(ctx, sender)
}

func (s *senderService) DeleteSender(ctx context.Context, id primitive.ObjectID) error {
	return s.senderRepo.Delete(ctx, id)
}
