package scheduling

import (
	"context"
	"errors"
	"time"

	bookingRepo "barberbook/database/repository/booking"
	ledgerRepo "barberbook/database/repository/ledger"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"
	"barberbook/services/barber"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const anonymousClient = "anonymous"

// DefaultSchedulingEngine implements SchedulingEngine over the availability
// source and the catalog, booking and ledger repositories.
//
// Concurrency contract: the advisory conflict check in Book is not trusted
// for the commit. BookingRepository.CreateIfFree re-validates and inserts in
// one store-level transaction, so for any one barber the set of confirmed
// bookings stays mutually non-overlapping no matter how many requests race.
type DefaultSchedulingEngine struct {
	Availability AvailabilitySource
	Services     serviceRepo.ServiceRepository
	Bookings     bookingRepo.BookingRepository
	Ledger       ledgerRepo.LedgerRepository
}

// ListAvailableSlots generates the candidate slots for a date and filters
// out those overlapping an existing confirmed booking. A missing barber,
// availability or service means nothing is bookable and returns an empty
// list, not an error.
func (se *DefaultSchedulingEngine) ListAvailableSlots(ctx context.Context, barberID string, date time.Time, serviceID string) ([]models.CandidateSlot, error) {
	avail, err := se.Availability.GetAvailability(ctx, barberID)
	if err != nil {
		if errors.Is(err, barber.ErrNotFound) {
			return []models.CandidateSlot{}, nil
		}
		return nil, NewStoreError("failed to load availability", err)
	}
	if avail == nil {
		return []models.CandidateSlot{}, nil
	}

	svc, err := se.Services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return []models.CandidateSlot{}, nil
		}
		return nil, NewStoreError("failed to load service", err)
	}
	if svc.BarberID != barberID {
		return []models.CandidateSlot{}, nil
	}

	candidates := GenerateSlots(*avail, date, svc.DurationMinutes)
	if len(candidates) == 0 {
		return []models.CandidateSlot{}, nil
	}

	// One day-wide fetch; the same half-open predicate hasConflict applies
	// is then evaluated per candidate.
	dayStart, dayEnd := localDayWindow(candidates[0].StartTime)
	existing, err := se.Bookings.ListConfirmedBetween(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, NewStoreError("failed to load bookings for conflict check", err)
	}

	free := make([]models.CandidateSlot, 0, len(candidates))
	for _, c := range candidates {
		conflicting := false
		for _, b := range existing {
			if overlaps(c.StartTime, c.EndTime, b.StartTime, b.EndTime) {
				conflicting = true
				break
			}
		}
		if !conflicting {
			free = append(free, c)
		}
	}
	return free, nil
}

// Book validates the request, runs the advisory conflict check, then commits
// through the transactional write. On success a pending receivable is
// appended to the barber's ledger; a ledger failure is logged but does not
// undo the booking.
func (se *DefaultSchedulingEngine) Book(ctx context.Context, barberID, serviceID string, start time.Time, client models.ClientInfo) (*models.Booking, error) {
	if barberID == "" {
		return nil, NewValidationError("missing barber id")
	}
	if serviceID == "" {
		return nil, NewValidationError("missing service id")
	}
	if start.IsZero() {
		return nil, NewValidationError("missing start time")
	}

	svc, err := se.Services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			// Loud failure: the service disappeared between listing and booking.
			return nil, NewNotFoundError("service not found")
		}
		return nil, NewStoreError("failed to load service", err)
	}
	if svc.BarberID != barberID {
		return nil, NewNotFoundError("service not found for this barber")
	}
	if svc.DurationMinutes <= 0 {
		return nil, NewValidationError("service has a non-positive duration")
	}

	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	conflict, err := se.HasConflict(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, NewConflictError("slot unavailable")
	}

	clientID := client.ID
	if clientID == "" {
		clientID = anonymousClient
	}
	clientName := client.Name
	if clientName == "" {
		clientName = anonymousClient
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		BarberID:    barberID,
		ClientID:    clientID,
		ClientName:  clientName,
		ClientPhone: client.Phone,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Price:       svc.Price,
		StartTime:   start,
		EndTime:     end,
		Status:      models.BookingConfirmed,
		CreatedAt:   time.Now().UTC(),
	}

	if err := se.Bookings.CreateIfFree(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, NewConflictError("slot unavailable")
		}
		return nil, NewStoreError("failed to persist booking", err)
	}

	se.recordReceivable(ctx, booking)
	return booking, nil
}

func (se *DefaultSchedulingEngine) recordReceivable(ctx context.Context, booking *models.Booking) {
	if se.Ledger == nil {
		return
	}
	entry := &models.LedgerEntry{
		ID:          uuid.New().String(),
		BarberID:    booking.BarberID,
		BookingID:   booking.ID,
		ClientName:  booking.ClientName,
		ServiceName: booking.ServiceName,
		Amount:      booking.Price,
		Status:      models.LedgerPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := se.Ledger.Create(ctx, entry); err != nil {
		utils.GetLogger().Warn("failed to record receivable for booking",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
