package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/kcoproperties/leasing-api/internal/domain"
)

type fakeStore struct {
	bookings []domain.TourBooking
	marked   map[int64]bool
}

func newFakeStore(bookings ...domain.TourBooking) *fakeStore {
	return &fakeStore{bookings: bookings, marked: make(map[int64]bool)}
}

func (f *fakeStore) ListDueForReminder(_ context.Context, tourDate string) ([]domain.TourBooking, error) {
	var due []domain.TourBooking
	for _, b := range f.bookings {
		if b.TourDate == tourDate && !f.marked[b.ID] && b.Status == domain.TourPending {
			due = append(due, b)
		}
	}
	return due, nil
}

func (f *fakeStore) MarkReminderSent(_ context.Context, id int64) (bool, error) {
	if f.marked[id] {
		return false, nil
	}
	f.marked[id] = true
	return true, nil
}

type fakeSender struct {
	sent   []int64
	failOn map[int64]bool
}

func (f *fakeSender) SendTourReminder(_ context.Context, b domain.TourBooking) bool {
	if f.failOn[b.ID] {
		return false
	}
	f.sent = append(f.sent, b.ID)
	return true
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func booking(id int64, date string, status domain.TourStatus) domain.TourBooking {
	return domain.TourBooking{
		ID:       id,
		TourDate: date,
		TourTime: "10:00",
		Email:    "guest@example.com",
		Status:   status,
	}
}

func TestRunOnceSendsForTomorrowOnly(t *testing.T) {
	now := time.Date(2025, 11, 30, 14, 0, 0, 0, time.UTC)
	store := newFakeStore(
		booking(1, "2025-12-01", domain.TourPending),
		booking(2, "2025-12-02", domain.TourPending),
		booking(3, "2025-11-30", domain.TourPending),
	)
	sender := &fakeSender{}
	s := New(store, sender, time.Hour, 24*time.Hour).WithClock(fixedClock(now))

	sent, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sent != 1 {
		t.Fatalf("sent = %d, want 1", sent)
	}
	if len(sender.sent) != 1 || sender.sent[0] != 1 {
		t.Fatalf("sender.sent = %v, want [1]", sender.sent)
	}
	if !store.marked[1] {
		t.Error("booking 1 not marked")
	}
}

func TestRunOnceSendsEachReminderOnce(t *testing.T) {
	now := time.Date(2025, 11, 30, 14, 0, 0, 0, time.UTC)
	store := newFakeStore(booking(1, "2025-12-01", domain.TourPending))
	sender := &fakeSender{}
	s := New(store, sender, time.Hour, 24*time.Hour).WithClock(fixedClock(now))

	if _, err := s.RunOnce(context.Background()); err != nil {
		t.Fatal(err)
	}
	sent, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sent != 0 {
		t.Fatalf("second sweep sent = %d, want 0", sent)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sender.sent = %v, want exactly one send", sender.sent)
	}
}

func TestRunOnceSkipsConfirmedBookings(t *testing.T) {
	now := time.Date(2025, 11, 30, 14, 0, 0, 0, time.UTC)
	store := newFakeStore(
		booking(1, "2025-12-01", domain.TourConfirmed),
		booking(2, "2025-12-01", domain.TourCancelled),
	)
	sender := &fakeSender{}
	s := New(store, sender, time.Hour, 24*time.Hour).WithClock(fixedClock(now))

	sent, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sent != 0 || len(sender.sent) != 0 {
		t.Fatalf("sent = %d, sender.sent = %v, want none", sent, sender.sent)
	}
}

func TestRunOnceContinuesPastFailures(t *testing.T) {
	now := time.Date(2025, 11, 30, 14, 0, 0, 0, time.UTC)
	store := newFakeStore(
		booking(1, "2025-12-01", domain.TourPending),
		booking(2, "2025-12-01", domain.TourPending),
		booking(3, "2025-12-01", domain.TourPending),
	)
	sender := &fakeSender{failOn: map[int64]bool{2: true}}
	s := New(store, sender, time.Hour, 24*time.Hour).WithClock(fixedClock(now))

	sent, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sent != 2 {
		t.Fatalf("sent = %d, want 2", sent)
	}
	if store.marked[2] {
		t.Error("failed booking must stay unmarked so the next sweep retries it")
	}

	// next sweep retries only the failed one
	sender.failOn = nil
	sent, err = s.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sent != 1 {
		t.Fatalf("retry sweep sent = %d, want 1", sent)
	}
}

// blockingSender parks inside the send until released, so a sweep can be
// held in flight while another one is attempted.
type blockingSender struct {
	started chan struct{}
	release chan struct{}
	calls   int
}

func (b *blockingSender) SendTourReminder(_ context.Context, _ domain.TourBooking) bool {
	b.calls++
	close(b.started)
	<-b.release
	return true
}

func TestRunOnceSkipsWhileSweepInFlight(t *testing.T) {
	now := time.Date(2025, 11, 30, 14, 0, 0, 0, time.UTC)
	store := newFakeStore(booking(1, "2025-12-01", domain.TourPending))
	sender := &blockingSender{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := New(store, sender, time.Hour, 24*time.Hour).WithClock(fixedClock(now))

	type result struct {
		sent int
		err  error
	}
	first := make(chan result, 1)
	go func() {
		sent, err := s.RunOnce(context.Background())
		first <- result{sent, err}
	}()

	<-sender.started

	sent, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sent != 0 {
		t.Fatalf("overlapping sweep sent = %d, want 0", sent)
	}

	close(sender.release)
	got := <-first
	if got.err != nil {
		t.Fatal(got.err)
	}
	if got.sent != 1 {
		t.Fatalf("first sweep sent = %d, want 1", got.sent)
	}
	if sender.calls != 1 {
		t.Fatalf("sender called %d times, want 1", sender.calls)
	}

	// with the first sweep finished a new one runs again
	sent, err = s.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sent != 0 {
		t.Fatalf("post-release sweep sent = %d, want 0 (reminder already marked)", sent)
	}
}
