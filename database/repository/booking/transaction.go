package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree inserts a confirmed booking inside a multi-document
// transaction. The conflict re-check and the insert commit as one unit, so
// two concurrent attempts at overlapping ranges cannot both pass the check:
// the loser either sees the winner's record on the re-read or aborts on a
// transactional write conflict. Both surface as ErrSlotTaken.
func (repo *MongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	dayStart, dayEnd := localDayWindow(booking.StartTime)

	txnFn := func(sc mongo.SessionContext) error {
		// Re-read the full day of confirmed bookings; overlap is decided
		// here rather than in the query so boundary touches stay legal.
		filter := bson.M{
			"barberId":  booking.BarberID,
			"status":    models.BookingConfirmed,
			"startTime": bson.M{"$gte": dayStart, "$lt": dayEnd},
		}
		cursor, err := repo.coll.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict re-check query failed: %w", err)
		}
		var existing []models.Booking
		if err := cursor.All(sc, &existing); err != nil {
			return fmt.Errorf("conflict re-check decode failed: %w", err)
		}
		for _, b := range existing {
			if booking.StartTime.Before(b.EndTime) && b.StartTime.Before(booking.EndTime) {
				return ErrSlotTaken
			}
		}

		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// localDayWindow returns the [midnight, next midnight) window around t in
// t's own location, the barber's local reckoning of the calendar day.
func localDayWindow(t time.Time) (time.Time, time.Time) {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}
