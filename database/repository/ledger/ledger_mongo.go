package ledgerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no ledger entry matches the query.
var ErrNotFound = errors.New("ledger entry not found")

// LedgerRepository defines persistence operations for receivables.
type LedgerRepository interface {
	Create(ctx context.Context, entry *models.LedgerEntry) error
	ListByBarber(ctx context.Context, barberID string) ([]models.LedgerEntry, error)
	MarkPaid(ctx context.Context, barberID, id string, paidAt time.Time) error
	Summary(ctx context.Context, barberID string) (*models.LedgerSummary, error)
}

// MongoLedgerRepo implements LedgerRepository using MongoDB.
type MongoLedgerRepo struct {
	coll *mongo.Collection
}

// NewMongoLedgerRepo constructs a new instance of MongoLedgerRepo.
func NewMongoLedgerRepo() LedgerRepository {
	return &MongoLedgerRepo{
		coll: database.DB().Collection("ledger"),
	}
}

func (repo *MongoLedgerRepo) Create(ctx context.Context, entry *models.LedgerEntry) error {
	if _, err := repo.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

func (repo *MongoLedgerRepo) ListByBarber(ctx context.Context, barberID string) ([]models.LedgerEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"barberId": barberID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching ledger entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.LedgerEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding ledger entries: %w", err)
	}
	return entries, nil
}

func (repo *MongoLedgerRepo) MarkPaid(ctx context.Context, barberID, id string, paidAt time.Time) error {
	filter := bson.M{"id": id, "barberId": barberID, "status": models.LedgerPending}
	update := bson.M{"$set": bson.M{"status": models.LedgerPaid, "paidAt": paidAt}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark ledger entry %s paid: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary aggregates pending and paid totals for a barber.
func (repo *MongoLedgerRepo) Summary(ctx context.Context, barberID string) (*models.LedgerSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"barberId": barberID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Status string  `bson:"_id"`
		Total  float64 `bson:"total"`
		Count  int     `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}

	summary := &models.LedgerSummary{}
	for _, r := range results {
		summary.EntryCount += r.Count
		switch r.Status {
		case models.LedgerPending:
			summary.PendingTotal = r.Total
		case models.LedgerPaid:
			summary.PaidTotal = r.Total
		}
	}
	return summary, nil
}
