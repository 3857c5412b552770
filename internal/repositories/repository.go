package repositories

import (
	"context"
	"time"

	"github.com/rafflewise/draw-engine/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawRepository defines the interface for draw data operations
type DrawRepository interface {
	Create(ctx context.Context, draw *models.Draw) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Draw, error)
	Update(ctx context.Context, draw *models.Draw) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context, page, limit int) ([]*models.Draw, error)
	FindByStatus(ctx context.Context, status models.DrawStatus) ([]*models.Draw, error)
	FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.Draw, error)
	FindNextScheduledDraw(ctx context.Context, after time.Time) (*models.Draw, error)
	Count(ctx context.Context) (int64, error)
}

// EntryRepository defines the interface for entry data operations
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) error
	CreateMany(ctx context.Context, entries []*models.Entry) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error)
	FindByCode(ctx context.Context, code string) (*models.Entry, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Entry, error)
	FindEligible(ctx context.Context) ([]*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// WinnerRepository defines the interface for winner data operations
type WinnerRepository interface {
	Create(ctx context.Context, winner *models.Winner) error
	CreateMany(ctx context.Context, winners []*models.Winner) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Winner, error)
	FindByDrawID(ctx context.Context, drawID primitive.ObjectID) ([]*models.Winner, error)
	FindByDrawIDAndTier(ctx context.Context, drawID primitive.ObjectID, tier string) ([]*models.Winner, error)
	FindByCode(ctx context.Context, code string) ([]*models.Winner, error)
	Update(ctx context.Context, winner *models.Winner) error
	Count(ctx context.Context) (int64, error)
}

// ExclusionRepository defines the interface for exclusion list operations
type ExclusionRepository interface {
	IsExcluded(ctx context.Context, code string) (bool, error)
	Add(ctx context.Context, exclusion *models.Exclusion) error
	Remove(ctx context.Context, code string) error
	FindAll(ctx context.Context) ([]*models.Exclusion, error)
	CodeSet(ctx context.Context) (map[string]bool, error)
}

// AdminUserRepository defines the interface for admin user data operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	Update(ctx context.Context, adminUser *models.AdminUser) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AuditRepository defines the interface for the append-only audit trail
type AuditRepository interface {
	Create(ctx context.Context, record *models.AuditRecord) error
	FindByDrawID(ctx context.Context, drawID primitive.ObjectID) ([]*models.AuditRecord, error)
	FindRecent(ctx context.Context, limit int) ([]*models.AuditRecord, error)
}
