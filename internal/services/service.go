package services

import (
	"context"
	"time"

	"github.com/rafflewise/draw-engine/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PickService defines the interface for one-off bounded random picks
type PickService interface {
	// QuickPick draws count integers uniformly from [1, bound]
	QuickPick(ctx context.Context, bound, count int, unique bool) ([]int, error)
}

// DrawService defines the interface for draw lifecycle operations
type DrawService interface {
	// ScheduleDraw schedules a new draw
	ScheduleDraw(ctx context.Context, req *models.ScheduleDrawRequest) (*models.Draw, error)

	// ExecuteDraw executes a scheduled draw
	ExecuteDraw(ctx context.Context, drawID primitive.ObjectID) (*models.Draw, error)

	// CancelDraw cancels a draw that has not started executing
	CancelDraw(ctx context.Context, drawID primitive.ObjectID, actor string) (*models.Draw, error)

	// GetDrawByID retrieves a draw by its ID
	GetDrawByID(ctx context.Context, drawID primitive.ObjectID) (*models.Draw, error)

	// GetDraws retrieves draws, optionally filtered by status or date range
	GetDraws(ctx context.Context, status models.DrawStatus, startDate, endDate time.Time, page, limit int) ([]*models.Draw, error)

	// GetNextDraw retrieves the earliest draw still scheduled after the given time
	GetNextDraw(ctx context.Context, after time.Time) (*models.Draw, error)

	// GetWinnersByDrawID retrieves the winners for a specific draw,
	// optionally narrowed to one prize tier
	GetWinnersByDrawID(ctx context.Context, drawID primitive.ObjectID, tier string) ([]*models.Winner, error)

	// GetWinsByCode retrieves every win recorded for a participant code
	GetWinsByCode(ctx context.Context, code string) ([]*models.Winner, error)

	// UpdateClaimStatus moves a winner between claim states
	UpdateClaimStatus(ctx context.Context, winnerID primitive.ObjectID, status string, actor string) (*models.Winner, error)

	// GetStats reports engine-wide record counts
	GetStats(ctx context.Context) (*models.EngineStats, error)
}

// EntryService defines the interface for participant entry operations
type EntryService interface {
	// CreateEntry registers a single entry
	CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (*models.Entry, error)

	// GetEntryByCode retrieves an entry by its participant code
	GetEntryByCode(ctx context.Context, code string) (*models.Entry, error)

	// GetEntries retrieves entries with pagination
	GetEntries(ctx context.Context, page, limit int) ([]*models.Entry, error)

	// CountEntries counts all registered entries
	CountEntries(ctx context.Context) (int64, error)

	// DeleteEntry removes an entry
	DeleteEntry(ctx context.Context, id primitive.ObjectID) error

	// ImportEntries bulk-loads entries parsed from a CSV stream
	ImportEntries(ctx context.Context, entries []*models.Entry) (int, int, error)

	// AddExclusion bars a code from winning
	AddExclusion(ctx context.Context, req *models.CreateExclusionRequest, actor string) error

	// RemoveExclusion lifts an exclusion
	RemoveExclusion(ctx context.Context, code, actor string) error

	// GetExclusions lists all exclusions
	GetExclusions(ctx context.Context) ([]*models.Exclusion, error)
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	// Login checks credentials and returns a signed JWT on success
	Login(ctx context.Context, email, password string) (string, *models.AdminUser, error)

	// Register creates a new admin account
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error)

	// GetProfile retrieves the account behind an authenticated request
	GetProfile(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
}

// AuditService defines the interface for the audit trail
type AuditService interface {
	// Record appends an audit record; failures are logged, never propagated
	Record(ctx context.Context, recordType, actor string, drawID primitive.ObjectID, detail string)

	// GetByDrawID lists the audit trail of one draw
	GetByDrawID(ctx context.Context, drawID primitive.ObjectID) ([]*models.AuditRecord, error)

	// GetRecent lists the most recent audit records
	GetRecent(ctx context.Context, limit int) ([]*models.AuditRecord, error)
}
