package inventoryRepo

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

// ErrNotFound is returned when no product matches the query.
var ErrNotFound = errors.New("product not found")

// InventoryRepository defines persistence operations for stock items.
type InventoryRepository interface {
	Create(ctx context.Context, product *models.Product) error
	ListByBarber(ctx context.Context, barberID string) ([]models.Product, error)
	ListBelowQuantity(ctx context.Context, barberID string, threshold int) ([]models.Product, error)
	Update(ctx context.Context, barberID, id string, fields map[string]any) error
	Delete(ctx context.Context, barberID, id string) error
}

// MongoInventoryRepo implements InventoryRepository using MongoDB.
type MongoInventoryRepo struct {
	coll *mongo.Collection
}

// NewMongoInventoryRepo constructs a new instance of MongoInventoryRepo.
func NewMongoInventoryRepo() InventoryRepository {
	return &MongoInventoryRepo{
		coll: database.DB().Collection("inventory"),
	}
}

func (repo *MongoInventoryRepo) Create(ctx context.Context, product *models.Product) error {
	if _, err := repo.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (repo *MongoInventoryRepo) ListByBarber(ctx context.Context, barberID string) ([]models.Product, error) {
	return repo.list(ctx, bson.M{"barberId": barberID})
}

func (repo *MongoInventoryRepo) ListBelowQuantity(ctx context.Context, barberID string, threshold int) ([]models.Product, error) {
	return repo.list(ctx, bson.M{
		"barberId": barberID,
		"quantity": bson.M{"$lte": threshold},
	})
}

func (repo *MongoInventoryRepo) list(ctx context.Context, filter bson.M) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching inventory: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("error decoding inventory: %w", err)
	}
	return products, nil
}

func (repo *MongoInventoryRepo) Update(ctx context.Context, barberID, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	filter := bson.M{"id": id, "barberId": barberID}
	res, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoInventoryRepo) Delete(ctx context.Context, barberID, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id, "barberId": barberID})
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
