package mongodb

import (
	"context"
	"time"

	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WinnerRepository implements the repositories.WinnerRepository interface
type WinnerRepository struct {
	collection *mongo.Collection
}

// NewWinnerRepository creates a new WinnerRepository
func NewWinnerRepository(db *mongo.Database) repositories.WinnerRepository {
	return &WinnerRepository{
		collection: db.Collection("winners"),
	}
}

// Create creates a new winner
func (r *WinnerRepository) Create(ctx context.Context, winner *models.Winner) error {
	winner.CreatedAt = time.Now()
	winner.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, winner)
	return err
}

// CreateMany inserts all winners of a draw in one round trip
func (r *WinnerRepository) CreateMany(ctx context.Context, winners []*models.Winner) error {
	if len(winners) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(winners))
	for _, winner := range winners {
		winner.CreatedAt = now
		winner.UpdatedAt = now
		docs = append(docs, winner)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByID finds a winner by ID
func (r *WinnerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Winner, error) {
	var winner models.Winner
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&winner)
	if err != nil {
		return nil, err
	}
	return &winner, nil
}

// FindByDrawID finds all winners of a draw, in draw order
func (r *WinnerRepository) FindByDrawID(ctx context.Context, drawID primitive.ObjectID) ([]*models.Winner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "prizeTier", Value: 1}, {Key: "position", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"drawId": drawID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var winners []*models.Winner
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	if winners == nil {
		winners = []*models.Winner{}
	}
	return winners, nil
}

// FindByDrawIDAndTier finds winners of a draw for one prize tier
func (r *WinnerRepository) FindByDrawIDAndTier(ctx context.Context, drawID primitive.ObjectID, tier string) ([]*models.Winner, error) {
	opts := options.Find().SetSort(bson.M{"position": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"drawId": drawID, "prizeTier": tier}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var winners []*models.Winner
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	if winners == nil {
		winners = []*models.Winner{}
	}
	return winners, nil
}

// FindByCode finds every win recorded for a participant code
func (r *WinnerRepository) FindByCode(ctx context.Context, code string) ([]*models.Winner, error) {
	opts := options.Find().SetSort(bson.M{"winDate": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"code": code}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var winners []*models.Winner
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	if winners == nil {
		winners = []*models.Winner{}
	}
	return winners, nil
}

// Update updates a winner
func (r *WinnerRepository) Update(ctx context.Context, winner *models.Winner) error {
	winner.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": winner.ID}, winner)
	return err
}

// Count counts all winners
func (r *WinnerRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
