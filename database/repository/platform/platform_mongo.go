package platformRepo

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

const configDocID = "config"

// PlatformRepository reads and merges the singleton platform config document.
type PlatformRepository interface {
	GetConfig(ctx context.Context) (*models.PlatformConfig, error)
	MergeConfig(ctx context.Context, payload map[string]any) error
}

// MongoPlatformRepo implements PlatformRepository using MongoDB.
type MongoPlatformRepo struct {
	coll *mongo.Collection
}

// NewMongoPlatformRepo constructs a new instance of MongoPlatformRepo.
func NewMongoPlatformRepo() PlatformRepository {
	return &MongoPlatformRepo{
		coll: database.DB().Collection("platform"),
	}
}

// GetConfig returns the platform config, or a zero-value config when the
// document has never been written.
func (repo *MongoPlatformRepo) GetConfig(ctx context.Context) (*models.PlatformConfig, error) {
	var cfg models.PlatformConfig
	if err := repo.coll.FindOne(ctx, bson.M{"_id": configDocID}).Decode(&cfg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.PlatformConfig{}, nil
		}
		return nil, fmt.Errorf("error fetching platform config: %w", err)
	}
	return &cfg, nil
}

// MergeConfig upserts only the provided fields, preserving everything else
// already on the document.
func (repo *MongoPlatformRepo) MergeConfig(ctx context.Context, payload map[string]any) error {
	if len(payload) == 0 {
		return nil
	}
	opts := options.Update().SetUpsert(true)
	_, err := repo.coll.UpdateOne(ctx, bson.M{"_id": configDocID}, bson.M{"$set": payload}, opts)
	if err != nil {
		return fmt.Errorf("failed to merge platform config: %w", err)
	}
	return nil
}
