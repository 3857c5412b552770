package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rafflewise/draw-engine/internal/events"
	"github.com/rafflewise/draw-engine/internal/metrics"
	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/internal/repositories"
	"github.com/rafflewise/draw-engine/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure EntryServiceImpl implements EntryService
var _ EntryService = (*EntryServiceImpl)(nil)

var (
	// ErrDuplicateCode is returned when registering a code that already
	// exists.
	ErrDuplicateCode = errors.New("participant code already registered")

	// ErrInvalidTickets is returned for a negative ticket count.
	ErrInvalidTickets = errors.New("tickets must not be negative")
)

// Length of generated participant codes
const referenceCodeLength = 8

// EntryServiceImpl manages participant entries and the exclusion list
type EntryServiceImpl struct {
	entryRepo     repositories.EntryRepository
	exclusionRepo repositories.ExclusionRepository
	auditService  AuditService
	publisher     events.Publisher
	metrics       *metrics.Metrics
}

// NewEntryService creates a new EntryServiceImpl
func NewEntryService(
	entryRepo repositories.EntryRepository,
	exclusionRepo repositories.ExclusionRepository,
	auditService AuditService,
	publisher events.Publisher,
	m *metrics.Metrics,
) *EntryServiceImpl {
	return &EntryServiceImpl{
		entryRepo:     entryRepo,
		exclusionRepo: exclusionRepo,
		auditService:  auditService,
		publisher:     publisher,
		metrics:       m,
	}
}

// CreateEntry registers a single entry. A request without a code gets a
// generated reference code.
func (s *EntryServiceImpl) CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (*models.Entry, error) {
	if req.Tickets < 0 {
		return nil, ErrInvalidTickets
	}
	tickets := req.Tickets
	if tickets == 0 {
		tickets = 1
	}

	code := utils.NormalizeCode(req.Code)
	if code == "" {
		generated, err := utils.GenerateReferenceCode(referenceCodeLength)
		if err != nil {
			slog.Error("Failed to generate reference code", "error", err)
			return nil, fmt.Errorf("failed to generate reference code: %w", err)
		}
		code = generated
	}

	existing, err := s.entryRepo.FindByCode(ctx, code)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, utils.MaskCode(code))
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check for existing entry: %w", err)
	}

	entry := &models.Entry{
		Code:    code,
		Name:    req.Name,
		Tickets: tickets,
		Source:  models.EntrySourceAPI,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		slog.Error("Failed to create entry", "error", err, "code", utils.MaskCode(code))
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	slog.Info("Entry registered", "entryId", entry.ID, "code", utils.MaskCode(code), "tickets", tickets)
	return entry, nil
}

// GetEntryByCode retrieves an entry by its participant code
func (s *EntryServiceImpl) GetEntryByCode(ctx context.Context, code string) (*models.Entry, error) {
	entry, err := s.entryRepo.FindByCode(ctx, utils.NormalizeCode(code))
	if err != nil {
		return nil, err // Pass mongo.ErrNoDocuments through for the handler
	}
	return entry, nil
}

// GetEntries retrieves entries with pagination
func (s *EntryServiceImpl) GetEntries(ctx context.Context, page, limit int) ([]*models.Entry, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}
	entries, err := s.entryRepo.FindAll(ctx, page, limit)
	if err != nil {
		slog.Error("Failed to get entries", "error", err)
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}
	return entries, nil
}

// CountEntries counts all registered entries
func (s *EntryServiceImpl) CountEntries(ctx context.Context) (int64, error) {
	count, err := s.entryRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// DeleteEntry removes an entry
func (s *EntryServiceImpl) DeleteEntry(ctx context.Context, id primitive.ObjectID) error {
	if err := s.entryRepo.Delete(ctx, id); err != nil {
		slog.Error("Failed to delete entry", "error", err, "entryId", id)
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// ImportEntries bulk-loads parsed entries. Codes already registered get
// their name and ticket count refreshed; new codes are inserted in one
// batch. Returns how many were created and updated.
func (s *EntryServiceImpl) ImportEntries(ctx context.Context, entries []*models.Entry) (int, int, error) {
	var toCreate []*models.Entry
	updated := 0

	for _, entry := range entries {
		entry.Code = utils.NormalizeCode(entry.Code)
		entry.Source = models.EntrySourceCSVImport
		if entry.Tickets < 1 {
			entry.Tickets = 1
		}

		existing, err := s.entryRepo.FindByCode(ctx, entry.Code)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				toCreate = append(toCreate, entry)
				continue
			}
			return len(toCreate), updated, fmt.Errorf("failed to check for existing entry: %w", err)
		}

		if entry.Name != "" {
			existing.Name = entry.Name
		}
		existing.Tickets = entry.Tickets
		existing.Source = models.EntrySourceCSVImport
		if err := s.entryRepo.Update(ctx, existing); err != nil {
			slog.Error("Failed to update imported entry", "error", err, "code", utils.MaskCode(entry.Code))
			continue
		}
		updated++
	}

	if len(toCreate) > 0 {
		if err := s.entryRepo.CreateMany(ctx, toCreate); err != nil {
			slog.Error("Failed to insert imported entries", "error", err, "count", len(toCreate))
			return 0, updated, fmt.Errorf("failed to insert imported entries: %w", err)
		}
	}
	created := len(toCreate)

	s.metrics.EntriesImported.Mark(int64(created + updated))
	s.auditService.Record(ctx, models.AuditEntriesImported, "system", primitive.NilObjectID,
		fmt.Sprintf("Imported %d entries (%d new, %d updated)", created+updated, created, updated))
	s.publisher.Publish(events.Event{
		Type: events.TypeEntriesImported,
		At:   time.Now(),
		Payload: map[string]interface{}{
			"created": created,
			"updated": updated,
		},
	})
	slog.Info("Entries imported", "created", created, "updated", updated)
	return created, updated, nil
}

// AddExclusion bars a code from winning. Adding a code twice is a no-op.
func (s *EntryServiceImpl) AddExclusion(ctx context.Context, req *models.CreateExclusionRequest, actor string) error {
	code := utils.NormalizeCode(req.Code)
	if code == "" {
		return errors.New("exclusion code must not be empty")
	}

	already, err := s.exclusionRepo.IsExcluded(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to check exclusion list: %w", err)
	}
	if already {
		return nil
	}

	exclusion := &models.Exclusion{
		Code:      code,
		Reason:    req.Reason,
		CreatedBy: actor,
	}
	if err := s.exclusionRepo.Add(ctx, exclusion); err != nil {
		slog.Error("Failed to add exclusion", "error", err, "code", utils.MaskCode(code))
		return fmt.Errorf("failed to add exclusion: %w", err)
	}

	s.auditService.Record(ctx, models.AuditExclusionAdded, actor, primitive.NilObjectID,
		fmt.Sprintf("Excluded %s: %s", utils.MaskCode(code), req.Reason))
	slog.Info("Exclusion added", "code", utils.MaskCode(code), "actor", actor)
	return nil
}

// RemoveExclusion lifts an exclusion
func (s *EntryServiceImpl) RemoveExclusion(ctx context.Context, code, actor string) error {
	normalized := utils.NormalizeCode(code)
	if err := s.exclusionRepo.Remove(ctx, normalized); err != nil {
		slog.Error("Failed to remove exclusion", "error", err, "code", utils.MaskCode(normalized))
		return fmt.Errorf("failed to remove exclusion: %w", err)
	}
	s.auditService.Record(ctx, models.AuditExclusionRemoved, actor, primitive.NilObjectID,
		fmt.Sprintf("Exclusion lifted for %s", utils.MaskCode(normalized)))
	slog.Info("Exclusion removed", "code", utils.MaskCode(normalized), "actor", actor)
	return nil
}

// GetExclusions lists all exclusions
func (s *EntryServiceImpl) GetExclusions(ctx context.Context) ([]*models.Exclusion, error) {
	exclusions, err := s.exclusionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve exclusions: %w", err)
	}
	return exclusions, nil
}
