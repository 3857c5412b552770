package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claim statuses for a winner record
const (
	ClaimStatusPending   = "PENDING"
	ClaimStatusClaimed   = "CLAIMED"
	ClaimStatusForfeited = "FORFEITED"
)

// Winner represents a winning entry in a draw
type Winner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DrawID      primitive.ObjectID `bson:"drawId" json:"drawId"`
	EntryID     primitive.ObjectID `bson:"entryId" json:"entryId"`
	Code        string             `bson:"code" json:"code"`
	PrizeTier   string             `bson:"prizeTier" json:"prizeTier"`
	PrizeAmount float64            `bson:"prizeAmount" json:"prizeAmount"`
	Position    int                `bson:"position" json:"position"` // 1-based draw order within the tier
	WinDate     time.Time          `bson:"winDate" json:"winDate"`
	ClaimStatus string             `bson:"claimStatus" json:"claimStatus"` // PENDING, CLAIMED, FORFEITED
	ClaimDate   time.Time          `bson:"claimDate,omitempty" json:"claimDate,omitempty"`
	NotifiedAt  time.Time          `bson:"notifiedAt,omitempty" json:"notifiedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
