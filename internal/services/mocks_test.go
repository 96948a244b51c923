package services

import (
	"context"
	"time"

	"github.com/brightops/campaign-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes shared by the service tests.

type mockCampaignRepo struct {
	campaigns map[primitive.ObjectID]*models.Campaign
	updates   int
	deleted   []primitive.ObjectID
}

func newMockCampaignRepo(campaigns ...*models.Campaign) *mockCampaignRepo {
	m := &mockCampaignRepo{campaigns: make(map[primitive.ObjectID]*models.Campaign)}
	for _, c := range campaigns {
		cp := *c
		m.campaigns[c.ID] = &cp
	}
	return m
}

func (m *mockCampaignRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *c
	return &cp, nil
}

func (m *mockCampaignRepo) FindAll(ctx context.Context, page, limit int) ([]models.Campaign, error) {
	out := make([]models.Campaign, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCampaignRepo) FindDueScheduled(ctx context.Context, now time.Time) ([]*models.Campaign, error) {
	var out []*models.Campaign
	for _, c := range m.campaigns {
		if c.Status == models.CampaignStatusScheduled && !c.ScheduledAt.IsZero() && !c.ScheduledAt.After(now) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockCampaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	if campaign.ID.IsZero() {
		campaign.ID = primitive.NewObjectID()
	}
	cp := *campaign
	m.campaigns[campaign.ID] = &cp
	return nil
}

func (m *mockCampaignRepo) Update(ctx context.Context, campaign *models.Campaign) error {
	cp := *campaign
	m.campaigns[campaign.ID] = &cp
	m.updates++
	return nil
}

func (m *mockCampaignRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(m.campaigns, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCampaignRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.campaigns)), nil
}

func (m *mockCampaignRepo) RecordOpen(ctx context.Context, id, contactID primitive.ObjectID) error {
	c, ok := m.campaigns[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if !c.HasOpened(contactID) {
		c.OpenedBy = append(c.OpenedBy, contactID)
	}
	c.OpenCount++
	return nil
}

func (m *mockCampaignRepo) RecordClick(ctx context.Context, id, contactID primitive.ObjectID) error {
	c, ok := m.campaigns[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for _, existing := range c.ClickedBy {
		if existing == contactID {
			return nil
		}
	}
	c.ClickedBy = append(c.ClickedBy, contactID)
	return nil
}

type mockTemplateRepo struct {
	templates map[primitive.ObjectID]*models.Template
}

func newMockTemplateRepo(templates ...*models.Template) *mockTemplateRepo {
	m := &mockTemplateRepo{templates: make(map[primitive.ObjectID]*models.Template)}
	for _, t := range templates {
		m.templates[t.ID] = t
	}
	return m
}

func (m *mockTemplateRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Template, error) {
	t, ok := m.templates[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return t, nil
}

func (m *mockTemplateRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Template, error) {
	var out []*models.Template
	for _, t := range m.templates {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTemplateRepo) Create(ctx context.Context, template *models.Template) error {
	if template.ID.IsZero() {
		template.ID = primitive.NewObjectID()
	}
	m.templates[template.ID] = template
	return nil
}

func (m *mockTemplateRepo) Update(ctx context.Context, template *models.Template) error {
	m.templates[template.ID] = template
	return nil
}

func (m *mockTemplateRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(m.templates, id)
	return nil
}

func (m *mockTemplateRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.templates)), nil
}

type mockContactRepo struct {
	contacts map[primitive.ObjectID]*models.Contact
}

func newMockContactRepo(contacts ...*models.Contact) *mockContactRepo {
	m := &mockContactRepo{contacts: make(map[primitive.ObjectID]*models.Contact)}
	for _, c := range contacts {
		m.contacts[c.ID] = c
	}
	return m
}

func (m *mockContactRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	c, ok := m.contacts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}

func (m *mockContactRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Contact, error) {
	var out []*models.Contact
	for _, id := range ids {
		if c, ok := m.contacts[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockContactRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Contact, error) {
	var out []*models.Contact
	for _, c := range m.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	if contact.ID.IsZero() {
		contact.ID = primitive.NewObjectID()
	}
	m.contacts[contact.ID] = contact
	return nil
}

func (m *mockContactRepo) Update(ctx context.Context, contact *models.Contact) error {
	m.contacts[contact.ID] = contact
	return nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(m.contacts, id)
	return nil
}

func (m *mockContactRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.contacts)), nil
}

type mockSenderRepo struct {
	senders map[primitive.ObjectID]*models.SenderIdentity
	updates []*models.SenderIdentity
}

func newMockSenderRepo(senders ...*models.SenderIdentity) *mockSenderRepo {
	m := &mockSenderRepo{senders: make(map[primitive.ObjectID]*models.SenderIdentity)}
	for _, s := range senders {
		cp := *s
		m.senders[s.ID] = &cp
	}
	return m
}

func (m *mockSenderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SenderIdentity, error) {
	s, ok := m.senders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *s
	return &cp, nil
}

func (m *mockSenderRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.SenderIdentity, error) {
	var out []*models.SenderIdentity
	for _, id := range ids {
		if s, ok := m.senders[id]; ok {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockSenderRepo) FindAll(ctx context.Context, page, limit int) ([]*models.SenderIdentity, error) {
	var out []*models.SenderIdentity
	for _, s := range m.senders {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSenderRepo) Create(ctx context.Context, sender *models.SenderIdentity) error {
	if sender.ID.IsZero() {
		sender.ID = primitive.NewObjectID()
	}
	cp := *sender
	m.senders[sender.ID] = &cp
	return nil
}

func (m *mockSenderRepo) Update(ctx context.Context, sender *models.SenderIdentity) error {
	cp := *sender
	m.senders[sender.ID] = &cp
	m.updates = append(m.updates, &cp)
	return nil
}

func (m *mockSenderRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(m.senders, id)
	return nil
}

func (m *mockSenderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.senders)), nil
}

type mockMessageRepo struct {
	created []*models.Message
}

func (m *mockMessageRepo) Create(ctx context.Context, message *models.Message) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	m.created = append(m.created, message)
	return nil
}

func (m *mockMessageRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	for _, msg := range m.created {
		if msg.ID == id {
			return msg, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockMessageRepo) FindByCampaignID(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.Message, error) {
	var out []*models.Message
	for _, msg := range m.created {
		if msg.CampaignID == campaignID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *mockMessageRepo) CountByCampaignID(ctx context.Context, campaignID primitive.ObjectID) (int64, error) {
	msgs, _ := m.FindByCampaignID(ctx, campaignID, 1, 0)
	return int64(len(msgs)), nil
}

type mockLogRepo struct {
	entries []*models.DeliveryLog
}

func (m *mockLogRepo) Create(ctx context.Context, entry *models.DeliveryLog) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockLogRepo) FindByCampaignID(ctx context.Context, campaignID primitive.ObjectID, page, limit int) ([]*models.DeliveryLog, error) {
	var out []*models.DeliveryLog
	for _, e := range m.entries {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockLogRepo) CountByCampaignID(ctx context.Context, campaignID primitive.ObjectID) (int64, error) {
	logs, _ := m.FindByCampaignID(ctx, campaignID, 1, 0)
	return int64(len(logs)), nil
}

type mockAuditRepo struct {
	events []*models.AuditEvent
}

func (m *mockAuditRepo) Create(ctx context.Context, event *models.AuditEvent) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockAuditRepo) FindByEntityID(ctx context.Context, entityID primitive.ObjectID, page, limit int) ([]*models.AuditEvent, error) {
	var out []*models.AuditEvent
	for _, e := range m.events {
		if e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	m.users[user.Email] = &cp
	return nil
}

// stubGeo resolves every IP to a fixed country.
type stubGeo struct {
	country string
}

func (g *stubGeo) Country(ctx context.Context, ip string) string {
	return g.country
}
