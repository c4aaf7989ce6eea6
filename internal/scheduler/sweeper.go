// Package scheduler runs the hourly reminder sweep for next-day tours.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/pkg/logger"
)

type BookingStore interface {
	ListDueForReminder(ctx context.Context, tourDate string) ([]domain.TourBooking, error)
	MarkReminderSent(ctx context.Context, id int64) (bool, error)
}

// ReminderSender delivers the reminder email for one booking. It reports
// success only; delivery failures never abort a sweep.
type ReminderSender interface {
	SendTourReminder(ctx context.Context, booking domain.TourBooking) bool
}

type Sweeper struct {
	bookings  BookingStore
	sender    ReminderSender
	interval  time.Duration
	lookahead time.Duration
	now       func() time.Time
	running   atomic.Bool
}

func New(bookings BookingStore, sender ReminderSender, interval, lookahead time.Duration) *Sweeper {
	return &Sweeper{
		bookings:  bookings,
		sender:    sender,
		interval:  interval,
		lookahead: lookahead,
		now:       time.Now,
	}
}

// WithClock overrides the sweeper's notion of now. Tests use it to pin the
// target date.
func (s *Sweeper) WithClock(now func() time.Time) *Sweeper {
	s.now = now
	return s
}

// Start sweeps immediately, then on every tick until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) error {
	logger.Info("reminder sweeper started",
		"interval", s.interval.String(),
		"lookahead", s.lookahead.String(),
	)

	if _, err := s.RunOnce(ctx); err != nil {
		logger.Error("reminder sweep failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("reminder sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				logger.Error("reminder sweep failed", "error", err)
			}
		}
	}
}

// RunOnce selects bookings whose tour falls on the lookahead date and sends
// each one its reminder. Overlapping runs are skipped: if a sweep is still
// in flight the next tick returns immediately.
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	if !s.running.CompareAndSwap(false, true) {
		logger.Warn("reminder sweep already running, skipping")
		return 0, nil
	}
	defer s.running.Store(false)

	target := s.now().Add(s.lookahead).Format("2006-01-02")

	due, err := s.bookings.ListDueForReminder(ctx, target)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		logger.Debug("no reminders due", "tour_date", target)
		return 0, nil
	}

	logger.Info("sending tour reminders", "tour_date", target, "count", len(due))

	sent := 0
	for _, booking := range due {
		if !s.sender.SendTourReminder(ctx, booking) {
			logger.Error("reminder email failed",
				"booking_id", booking.ID,
				"email", booking.Email,
			)
			continue
		}

		marked, err := s.bookings.MarkReminderSent(ctx, booking.ID)
		if err != nil {
			logger.Error("failed to mark reminder sent", "booking_id", booking.ID, "error", err)
			continue
		}
		if marked {
			sent++
		}
	}

	logger.Info("reminder sweep complete", "tour_date", target, "sent", sent)
	return sent, nil
}
