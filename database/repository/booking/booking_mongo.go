package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListConfirmedBetween returns every confirmed booking for a barber whose
// start time falls inside [dayStart, dayEnd), sorted chronologically. The
// window is the whole calendar day: an earlier same-day booking can still
// overlap a duration-spanning candidate, so the scan cannot be narrowed to
// the candidate's own range.
func (repo *MongoBookingRepo) ListConfirmedBetween(ctx context.Context, barberID string, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"barberId":  barberID,
		"status":    models.BookingConfirmed,
		"startTime": bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	return repo.list(ctx, filter)
}

// ListForBarberBetween returns all bookings (any status) for the barber's
// own agenda view.
func (repo *MongoBookingRepo) ListForBarberBetween(ctx context.Context, barberID string, from, to time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"barberId":  barberID,
		"startTime": bson.M{"$gte": from, "$lt": to},
	}
	return repo.list(ctx, filter)
}

func (repo *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// Cancel flips the booking status to cancelled. The time range and parties
// are immutable; no other field is touched.
func (repo *MongoBookingRepo) Cancel(ctx context.Context, barberID, bookingID string) error {
	filter := bson.M{"id": bookingID, "barberId": barberID}
	update := bson.M{"$set": bson.M{"status": models.BookingCancelled}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
