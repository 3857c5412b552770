package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawStatus represents the status of a draw
type DrawStatus string

const (
	DrawStatusScheduled DrawStatus = "SCHEDULED"
	DrawStatusExecuting DrawStatus = "EXECUTING"
	DrawStatusCompleted DrawStatus = "COMPLETED"
	DrawStatusFailed    DrawStatus = "FAILED"
	DrawStatusCancelled DrawStatus = "CANCELLED"
)

// EntropyMode selects where a draw takes its randomness from
type EntropyMode string

const (
	// EntropyCrypto draws from the system entropy pool; not reproducible.
	EntropyCrypto EntropyMode = "CRYPTO"
	// EntropySeeded draws from a caller-supplied seed; reproducible.
	EntropySeeded EntropyMode = "SEEDED"
	// EntropyBeacon derives the seed from a public randomness beacon pulse,
	// so anyone holding the round number can replay the draw.
	EntropyBeacon EntropyMode = "BEACON"
)

// Draw represents a draw event
type Draw struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	DrawDate           time.Time          `bson:"drawDate" json:"drawDate"`
	Status             DrawStatus         `bson:"status" json:"status"`
	EntropyMode        EntropyMode        `bson:"entropyMode" json:"entropyMode"`
	Seed               int64              `bson:"seed,omitempty" json:"seed,omitempty"`               // Set for SEEDED draws, and recorded after BEACON resolution
	BeaconRound        uint64             `bson:"beaconRound,omitempty" json:"beaconRound,omitempty"` // Pulse the seed came from, BEACON draws only
	Prizes             []Prize            `bson:"prizes" json:"prizes"`
	TotalEntries       int                `bson:"totalEntries" json:"totalEntries"`
	TotalTickets       int                `bson:"totalTickets" json:"totalTickets"`
	NumWinners         int                `bson:"numWinners" json:"numWinners"`
	ExecutionStartTime time.Time          `bson:"executionStartTime,omitempty" json:"executionStartTime,omitempty"`
	ExecutionEndTime   time.Time          `bson:"executionEndTime,omitempty" json:"executionEndTime,omitempty"`
	ExecutionLog       []string           `bson:"executionLog,omitempty" json:"executionLog,omitempty"`
	ErrorMessage       string             `bson:"errorMessage,omitempty" json:"errorMessage,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleDrawRequest defines the payload for scheduling a draw
type ScheduleDrawRequest struct {
	Name        string      `json:"name" binding:"required"`
	DrawDate    time.Time   `json:"drawDate" binding:"required"`
	Prizes      []Prize     `json:"prizes" binding:"required,min=1,dive"`
	EntropyMode EntropyMode `json:"entropyMode,omitempty"`
	Seed        int64       `json:"seed,omitempty"` // Honored only when entropyMode is SEEDED
}

// EngineStats summarizes the record counts across the engine
type EngineStats struct {
	Draws   int64 `json:"draws"`
	Entries int64 `json:"entries"`
	Winners int64 `json:"winners"`
}
