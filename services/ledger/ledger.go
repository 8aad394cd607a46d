package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	ledgerRepo "barberbook/database/repository/ledger"
	"barberbook/models"
)

// ErrNotFound is returned when no pending entry matches the query for the
// barber.
var ErrNotFound = errors.New("ledger entry not found")

// LedgerService exposes a barber's receivables. Entries are created by the
// scheduling engine when bookings are confirmed; this service only reads
// them and settles them.
type LedgerService interface {
	ListEntries(ctx context.Context, barberID string) ([]models.LedgerEntry, error)
	MarkPaid(ctx context.Context, barberID, entryID string) error
	Summary(ctx context.Context, barberID string) (*models.LedgerSummary, error)
}

// DefaultLedgerService is the production implementation.
type DefaultLedgerService struct {
	Repo ledgerRepo.LedgerRepository
}

func (s *DefaultLedgerService) ListEntries(ctx context.Context, barberID string) ([]models.LedgerEntry, error) {
	entries, err := s.Repo.ListByBarber(ctx, barberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	if entries == nil {
		entries = []models.LedgerEntry{}
	}
	return entries, nil
}

// MarkPaid settles a pending receivable. Settling an entry that is already
// paid, or that belongs to another barber, reports not found.
func (s *DefaultLedgerService) MarkPaid(ctx context.Context, barberID, entryID string) error {
	if err := s.Repo.MarkPaid(ctx, barberID, entryID, time.Now().UTC()); err != nil {
		if errors.Is(err, ledgerRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark ledger entry paid: %w", err)
	}
	return nil
}

func (s *DefaultLedgerService) Summary(ctx context.Context, barberID string) (*models.LedgerSummary, error) {
	summary, err := s.Repo.Summary(ctx, barberID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ledger: %w", err)
	}
	return summary, nil
}
