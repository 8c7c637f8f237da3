package mongo

import (
	"context"
	"errors"
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/repository"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const leadCollectionName = "forms"

// mongoLeadRepository implements repository.LeadRepository
type mongoLeadRepository struct {
	collection *mongo.Collection
}

// NewMongoLeadRepository creates a new Lead repository backed by MongoDB.
// The collection keeps the original "forms" name.
func NewMongoLeadRepository(db *mongo.Database) repository.LeadRepository {
	return &mongoLeadRepository{
		collection: db.Collection(leadCollectionName),
	}
}

// Create appends a new lead submission.
func (r *mongoLeadRepository) Create(ctx context.Context, lead *domain.Lead) (primitive.ObjectID, error) {
	if lead.Name == "" || lead.Email == "" || lead.Type == "" {
		return primitive.NilObjectID, errors.New("lead name, email, and type are required")
	}

	lead.ID = primitive.NewObjectID()
	lead.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, lead)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetAll retrieves every captured lead, newest first.
func (r *mongoLeadRepository) GetAll(ctx context.Context) ([]domain.Lead, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leads := []domain.Lead{}
	if err = cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return leads, nil
}

// EnsureLeadIndexes creates necessary indexes for the forms collection.
func EnsureLeadIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
