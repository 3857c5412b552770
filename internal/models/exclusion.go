package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exclusion bars a participant code from being drawn as a winner.
// Excluded entries stay in the pool counts but are skipped at selection time.
type Exclusion struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Code      string             `bson:"code" json:"code"`
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedBy string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateExclusionRequest defines the payload for excluding a code
type CreateExclusionRequest struct {
	Code   string `json:"code" binding:"required"`
	Reason string `json:"reason,omitempty"`
}
