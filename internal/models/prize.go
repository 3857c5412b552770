package models

// Prize defines the structure for a single prize tier within a draw
type Prize struct {
	Tier       string  `bson:"tier" json:"tier" binding:"required"`             // e.g., "GRAND", "RUNNER_UP", "CONSOLATION"
	Amount     float64 `bson:"amount" json:"amount" binding:"required"`         // Prize amount for this tier
	NumWinners int     `bson:"numWinners" json:"numWinners" binding:"required"` // Number of winners drawn for this tier
}
