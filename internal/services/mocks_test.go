package services

import (
	"context"
	"sync"
	"time"

	"github.com/rafflewise/draw-engine/internal/events"
	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/pkg/beacon"
	"github.com/rafflewise/draw-engine/pkg/notify"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockDrawRepo struct {
	mock.Mock
}

func (m *mockDrawRepo) Create(ctx context.Context, draw *models.Draw) error {
	args := m.Called(ctx, draw)
	return args.Error(0)
}

func (m *mockDrawRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Draw, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Draw), args.Error(1)
}

func (m *mockDrawRepo) Update(ctx context.Context, draw *models.Draw) error {
	args := m.Called(ctx, draw)
	return args.Error(0)
}

func (m *mockDrawRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockDrawRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Draw, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Draw), args.Error(1)
}

func (m *mockDrawRepo) FindByStatus(ctx context.Context, status models.DrawStatus) ([]*models.Draw, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Draw), args.Error(1)
}

func (m *mockDrawRepo) FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.Draw, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Draw), args.Error(1)
}

func (m *mockDrawRepo) FindNextScheduledDraw(ctx context.Context, after time.Time) (*models.Draw, error) {
	args := m.Called(ctx, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Draw), args.Error(1)
}

func (m *mockDrawRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockEntryRepo struct {
	mock.Mock
}

func (m *mockEntryRepo) Create(ctx context.Context, entry *models.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockEntryRepo) CreateMany(ctx context.Context, entries []*models.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *mockEntryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *mockEntryRepo) FindByCode(ctx context.Context, code string) (*models.Entry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *mockEntryRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Entry, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entry), args.Error(1)
}

func (m *mockEntryRepo) FindEligible(ctx context.Context) ([]*models.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entry), args.Error(1)
}

func (m *mockEntryRepo) Update(ctx context.Context, entry *models.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockEntryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockEntryRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockWinnerRepo struct {
	mock.Mock
}

func (m *mockWinnerRepo) Create(ctx context.Context, winner *models.Winner) error {
	args := m.Called(ctx, winner)
	return args.Error(0)
}

func (m *mockWinnerRepo) CreateMany(ctx context.Context, winners []*models.Winner) error {
	args := m.Called(ctx, winners)
	return args.Error(0)
}

func (m *mockWinnerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Winner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Winner), args.Error(1)
}

func (m *mockWinnerRepo) FindByDrawID(ctx context.Context, drawID primitive.ObjectID) ([]*models.Winner, error) {
	args := m.Called(ctx, drawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Winner), args.Error(1)
}

func (m *mockWinnerRepo) FindByDrawIDAndTier(ctx context.Context, drawID primitive.ObjectID, tier string) ([]*models.Winner, error) {
	args := m.Called(ctx, drawID, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Winner), args.Error(1)
}

func (m *mockWinnerRepo) FindByCode(ctx context.Context, code string) ([]*models.Winner, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Winner), args.Error(1)
}

func (m *mockWinnerRepo) Update(ctx context.Context, winner *models.Winner) error {
	args := m.Called(ctx, winner)
	return args.Error(0)
}

func (m *mockWinnerRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockExclusionRepo struct {
	mock.Mock
}

func (m *mockExclusionRepo) IsExcluded(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockExclusionRepo) Add(ctx context.Context, exclusion *models.Exclusion) error {
	args := m.Called(ctx, exclusion)
	return args.Error(0)
}

func (m *mockExclusionRepo) Remove(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *mockExclusionRepo) FindAll(ctx context.Context) ([]*models.Exclusion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Exclusion), args.Error(1)
}

func (m *mockExclusionRepo) CodeSet(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type mockAdminUserRepo struct {
	mock.Mock
}

func (m *mockAdminUserRepo) Create(ctx context.Context, adminUser *models.AdminUser) error {
	args := m.Called(ctx, adminUser)
	return args.Error(0)
}

func (m *mockAdminUserRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *mockAdminUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *mockAdminUserRepo) Update(ctx context.Context, adminUser *models.AdminUser) error {
	args := m.Called(ctx, adminUser)
	return args.Error(0)
}

func (m *mockAdminUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) Record(ctx context.Context, recordType, actor string, drawID primitive.ObjectID, detail string) {
	m.Called(ctx, recordType, actor, drawID, detail)
}

func (m *mockAuditService) GetByDrawID(ctx context.Context, drawID primitive.ObjectID) ([]*models.AuditRecord, error) {
	args := m.Called(ctx, drawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditRecord), args.Error(1)
}

func (m *mockAuditService) GetRecent(ctx context.Context, limit int) ([]*models.AuditRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditRecord), args.Error(1)
}

type mockPulseSource struct {
	mock.Mock
}

func (m *mockPulseSource) LatestPulse(ctx context.Context) (beacon.Pulse, error) {
	args := m.Called(ctx)
	return args.Get(0).(beacon.Pulse), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyWinner(ctx context.Context, n notify.Notification) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}

// capturingPublisher records published events for assertions
type capturingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturingPublisher) Publish(e events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *capturingPublisher) Close() {}

func (p *capturingPublisher) published() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Event, len(p.events))
	copy(out, p.events)
	return out
}
