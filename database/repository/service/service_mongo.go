package serviceRepo

import (
	"context"
	"errors"
	"fmt"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo() ServiceRepository {
	return &MongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}

func (repo *MongoServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	if _, err := repo.coll.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (repo *MongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &svc, nil
}

func (repo *MongoServiceRepo) ListByBarber(ctx context.Context, barberID string) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"barberId": barberID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching services for barber %s: %w", barberID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// Update applies a targeted $set scoped to the owning barber so a barber can
// never edit another barber's catalog.
func (repo *MongoServiceRepo) Update(ctx context.Context, barberID, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	filter := bson.M{"id": id, "barberId": barberID}
	res, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoServiceRepo) Delete(ctx context.Context, barberID, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id, "barberId": barberID})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
