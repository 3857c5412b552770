package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry sources
const (
	EntrySourceAPI       = "API"
	EntrySourceCSVImport = "CSV_IMPORT"
)

// Entry represents a participant entry eligible for draws
type Entry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Code      string             `bson:"code" json:"code"` // Unique participant code
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Tickets   int                `bson:"tickets" json:"tickets"` // Weight in the draw pool, at least 1
	Source    string             `bson:"source" json:"source"`   // API, CSV_IMPORT
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateEntryRequest defines the payload for registering an entry. An empty
// code gets a generated reference code, returned on the created entry.
type CreateEntryRequest struct {
	Code    string `json:"code,omitempty"`
	Name    string `json:"name,omitempty"`
	Tickets int    `json:"tickets,omitempty"` // Defaults to 1 when omitted
}
