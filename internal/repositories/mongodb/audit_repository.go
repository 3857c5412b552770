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

// Ensure auditRepository implements repositories.AuditRepository
var _ repositories.AuditRepository = (*auditRepository)(nil)

type auditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a new repository for audit records
func NewAuditRepository(db *mongo.Database) repositories.AuditRepository {
	return &auditRepository{
		collection: db.Collection("audit_records"),
	}
}

// Create appends an audit record. Records are never updated or deleted.
func (r *auditRepository) Create(ctx context.Context, record *models.AuditRecord) error {
	record.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// FindByDrawID finds all audit records touching a draw, oldest first
func (r *auditRepository) FindByDrawID(ctx context.Context, drawID primitive.ObjectID) ([]*models.AuditRecord, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"drawId": drawID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.AuditRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []*models.AuditRecord{}
	}
	return records, nil
}

// FindRecent finds the most recent audit records
func (r *auditRepository) FindRecent(ctx context.Context, limit int) ([]*models.AuditRecord, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.AuditRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []*models.AuditRecord{}
	}
	return records, nil
}
