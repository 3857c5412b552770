package mongodb

import (
	"context"
	"time"

	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExclusionRepository implements the repositories.ExclusionRepository interface
type ExclusionRepository struct {
	collection *mongo.Collection
}

// NewExclusionRepository creates a new ExclusionRepository
func NewExclusionRepository(db *mongo.Database) repositories.ExclusionRepository {
	return &ExclusionRepository{
		collection: db.Collection("exclusions"),
	}
}

// IsExcluded checks whether a code is on the exclusion list
func (r *ExclusionRepository) IsExcluded(ctx context.Context, code string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"code": code})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add puts a code on the exclusion list
func (r *ExclusionRepository) Add(ctx context.Context, exclusion *models.Exclusion) error {
	exclusion.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, exclusion)
	return err
}

// Remove takes a code off the exclusion list
func (r *ExclusionRepository) Remove(ctx context.Context, code string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"code": code})
	return err
}

// FindAll finds all exclusions, newest first
func (r *ExclusionRepository) FindAll(ctx context.Context) ([]*models.Exclusion, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exclusions []*models.Exclusion
	if err := cursor.All(ctx, &exclusions); err != nil {
		return nil, err
	}
	if exclusions == nil {
		exclusions = []*models.Exclusion{}
	}
	return exclusions, nil
}

// CodeSet loads the whole exclusion list as a lookup set. Draw execution
// checks candidates against this instead of one query per pick.
func (r *ExclusionRepository) CodeSet(ctx context.Context) (map[string]bool, error) {
	exclusions, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(exclusions))
	for _, exclusion := range exclusions {
		set[exclusion.Code] = true
	}
	return set, nil
}
