package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure AuditServiceImpl implements AuditService
var _ AuditService = (*AuditServiceImpl)(nil)

// AuditServiceImpl writes and reads the append-only audit trail
type AuditServiceImpl struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new AuditServiceImpl
func NewAuditService(auditRepo repositories.AuditRepository) *AuditServiceImpl {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

// Record appends an audit record. A failed write is logged but never stops
// the action being audited.
func (s *AuditServiceImpl) Record(ctx context.Context, recordType, actor string, drawID primitive.ObjectID, detail string) {
	record := &models.AuditRecord{
		Type:   recordType,
		Actor:  actor,
		DrawID: drawID,
		Detail: detail,
	}
	if err := s.auditRepo.Create(ctx, record); err != nil {
		slog.Error("Failed to write audit record", "error", err, "type", recordType, "drawId", drawID)
	}
}

// GetByDrawID lists the audit trail of one draw
func (s *AuditServiceImpl) GetByDrawID(ctx context.Context, drawID primitive.ObjectID) ([]*models.AuditRecord, error) {
	records, err := s.auditRepo.FindByDrawID(ctx, drawID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve audit records: %w", err)
	}
	return records, nil
}

// GetRecent lists the most recent audit records
func (s *AuditServiceImpl) GetRecent(ctx context.Context, limit int) ([]*models.AuditRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	records, err := s.auditRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve audit records: %w", err)
	}
	return records, nil
}
