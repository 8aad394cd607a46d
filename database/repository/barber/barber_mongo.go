package barberRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no barber document matches the query.
var ErrNotFound = errors.New("barber not found")

// MongoBarberRepo implements BarberRepository using MongoDB.
type MongoBarberRepo struct {
	coll *mongo.Collection
}

// NewMongoBarberRepo constructs a new instance of MongoBarberRepo.
func NewMongoBarberRepo() BarberRepository {
	return &MongoBarberRepo{
		coll: database.DB().Collection("barbers"),
	}
}

func (repo *MongoBarberRepo) Create(ctx context.Context, barber *models.Barber) error {
	if _, err := repo.coll.InsertOne(ctx, barber); err != nil {
		return fmt.Errorf("failed to insert barber: %w", err)
	}
	return nil
}

func (repo *MongoBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	var barber models.Barber
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&barber); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching barber with id %s: %w", id, err)
	}
	return &barber, nil
}

func (repo *MongoBarberRepo) GetByEmail(ctx context.Context, email string) (*models.Barber, error) {
	var barber models.Barber
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&barber); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching barber with email %s: %w", email, err)
	}
	return &barber, nil
}

// UpdateProfile applies a targeted $set of the given fields. Callers pass
// only the fields they own; everything else on the document is preserved.
func (repo *MongoBarberRepo) UpdateProfile(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update barber %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoBarberRepo) Delete(ctx context.Context, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete barber %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoBarberRepo) SetAvailability(ctx context.Context, id string, avail models.Availability) error {
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"availability": avail}})
	if err != nil {
		return fmt.Errorf("failed to set availability for barber %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoBarberRepo) GetAvailability(ctx context.Context, id string) (*models.Availability, error) {
	var doc struct {
		Availability *models.Availability `bson:"availability"`
	}
	opts := bson.M{"id": id}
	if err := repo.coll.FindOne(ctx, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching availability for barber %s: %w", id, err)
	}
	return doc.Availability, nil
}

// SetPlan writes the plan state in one update. Nil trial pointers unset the
// trial fields rather than writing nulls.
func (repo *MongoBarberRepo) SetPlan(ctx context.Context, id, plan string, isPremium bool, trialStart, trialEnd *time.Time) error {
	set := bson.M{"plan": plan, "isPremium": isPremium}
	update := bson.M{"$set": set}
	if trialStart != nil && trialEnd != nil {
		set["trialStart"] = *trialStart
		set["trialEnd"] = *trialEnd
	} else {
		update["$unset"] = bson.M{"trialStart": "", "trialEnd": ""}
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set plan for barber %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ExpireTrials demotes every barber whose trial has lapsed and returns the
// number of demoted accounts.
func (repo *MongoBarberRepo) ExpireTrials(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"plan":     models.PlanTrial,
		"trialEnd": bson.M{"$lte": now},
	}
	update := bson.M{
		"$set":   bson.M{"plan": models.PlanFree, "isPremium": false},
		"$unset": bson.M{"trialStart": "", "trialEnd": ""},
	}
	res, err := repo.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire trials: %w", err)
	}
	return res.ModifiedCount, nil
}
