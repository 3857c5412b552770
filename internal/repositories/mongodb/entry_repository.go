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

// EntryRepository implements the repositories.EntryRepository interface
type EntryRepository struct {
	collection *mongo.Collection
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *mongo.Database) repositories.EntryRepository {
	return &EntryRepository{
		collection: db.Collection("entries"),
	}
}

// Create creates a new entry
func (r *EntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// CreateMany inserts a batch of entries in one round trip
func (r *EntryRepository) CreateMany(ctx context.Context, entries []*models.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		entry.CreatedAt = now
		entry.UpdatedAt = now
		docs = append(docs, entry)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByID finds an entry by ID
func (r *EntryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error) {
	var entry models.Entry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByCode finds an entry by its participant code
func (r *EntryRepository) FindByCode(ctx context.Context, code string) (*models.Entry, error) {
	var entry models.Entry
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&entry)
	if err != nil {
		return nil, err // Returns mongo.ErrNoDocuments if not found
	}
	return &entry, nil
}

// FindAll finds entries with pagination
func (r *EntryRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Entry, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.Entry{}
	}
	return entries, nil
}

// FindEligible loads the full draw pool: every entry carrying at least one
// ticket. Draw execution weights each entry by its ticket count, so the
// whole pool is needed in memory.
func (r *EntryRepository) FindEligible(ctx context.Context) ([]*models.Entry, error) {
	filter := bson.M{"tickets": bson.M{"$gte": 1}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.Entry{}
	}
	return entries, nil
}

// Update updates an entry
func (r *EntryRepository) Update(ctx context.Context, entry *models.Entry) error {
	entry.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	return err
}

// Delete deletes an entry by ID
func (r *EntryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count counts all entries
func (r *EntryRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
