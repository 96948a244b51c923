package services

import (
	"context"
	"strings"
	"time"

	"github.com/brightops/campaign-backend/internal/models"
	"github.com/brightops/campaign-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure templateService implements TemplateService
var _ TemplateService = (*templateService)(nil)

// templateService handles template CRUD and personalization
type templateService struct {
	templateRepo repositories.TemplateRepository
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(templateRepo repositories.TemplateRepository) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
	}
}

// RenderTemplate substitutes the recipient placeholders into templateText.
// Every occurrence of each placeholder is replaced. Missing contact fields
// become empty strings, except language which defaults to "en".
func RenderTemplate(templateText string, contact *models.Contact) string {
	language := contact.Language
	if language == "" {
		language = "en"
	}

	out := templateText
	out = strings.ReplaceAll(out, "{{firstName}}", contact.FirstName)
	out = strings.ReplaceAll(out, "{{lastName}}", contact.LastName)
	out = strings.ReplaceAll(out, "{{email}}", contact.Email)
	out = strings.ReplaceAll(out, "{{country}}", contact.Country)
	out = strings.ReplaceAll(out, "{{language}}", language)
	return out
}

// Render personalizes a template string for a contact
func (s *templateService) Render(templateText string, contact *models.Contact) string {
	return RenderTemplate(templateText, contact)
}

// CreateTemplate creates a new template
func (s *templateService) CreateTemplate(ctx context.Context, template *models.Template) error {
	template.CreatedAt = time.Now()
	template.UpdatedAt = time.Now()
	return s.templateRepo.Create(ctx, template)
}

// GetTemplateByID retrieves a template by ID
func (s *templateService) GetTemplateByID(ctx context.Context, id primitive.ObjectID) (*models.Template, error) {
	return s.templateRepo.FindByID(ctx, id)
}

// GetAllTemplates retrieves all templates with pagination
func (s *templateService) GetAllTemplates(ctx context.Context, page, limit int) ([]*models.Template, error) {
	return s.templateRepo.FindAll(ctx, page, limit)
}

// UpdateTemplate updates a template
func (s *templateService) UpdateTemplate(ctx context.Context, template *models.Template) error {
	template.UpdatedAt = time.Now()
	return s.templateRepo.Update(ctx, template)
}

// DeleteTemplate deletes a template
func (s *templateService) DeleteTemplate(ctx context.Context, id primitive.ObjectID) error {
	return s.templateRepo.Delete(ctx, id)
}
