package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit record types
const (
	AuditDrawScheduled    = "DRAW_SCHEDULED"
	AuditDrawExecuted     = "DRAW_EXECUTED"
	AuditDrawFailed       = "DRAW_FAILED"
	AuditDrawCancelled    = "DRAW_CANCELLED"
	AuditClaimUpdated     = "CLAIM_UPDATED"
	AuditEntriesImported  = "ENTRIES_IMPORTED"
	AuditExclusionAdded   = "EXCLUSION_ADDED"
	AuditExclusionRemoved = "EXCLUSION_REMOVED"
)

// AuditRecord is an append-only trace of an administrative or draw action
type AuditRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Type      string             `bson:"type" json:"type"`
	Actor     string             `bson:"actor,omitempty" json:"actor,omitempty"` // Admin email or "system"
	DrawID    primitive.ObjectID `bson:"drawId,omitempty" json:"drawId,omitempty"`
	Detail    string             `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
