package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/internal/mailer"
	"github.com/kcoproperties/leasing-api/pkg/config"
	"github.com/kcoproperties/leasing-api/pkg/events"
)

type mockTourRepo struct {
	created []domain.TourBooking
	nextID  int64
}

func (m *mockTourRepo) Create(_ context.Context, req *domain.TourBookingReq, people int) (*domain.TourBooking, error) {
	m.nextID++
	booking := domain.TourBooking{
		ID:             m.nextID,
		PropertyID:     req.PropertyID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		TourDate:       req.TourDate,
		TourTime:       req.TourTime,
		NumberOfPeople: people,
		Message:        req.Message,
		Status:         domain.TourPending,
		CreatedAt:      time.Now(),
	}
	m.created = append(m.created, booking)
	return &booking, nil
}

func (m *mockTourRepo) GetByID(_ context.Context, id int64) (*domain.TourBooking, error) {
	for i := range m.created {
		if m.created[i].ID == id {
			return &m.created[i], nil
		}
	}
	return nil, nil
}

func (m *mockTourRepo) List(_ context.Context, _, _ int) ([]domain.TourBooking, error) {
	return m.created, nil
}

func (m *mockTourRepo) ListByProperty(_ context.Context, propertyID int64) ([]domain.TourBooking, error) {
	var out []domain.TourBooking
	for _, b := range m.created {
		if b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockTourRepo) UpdateStatus(_ context.Context, id int64, patch domain.TourStatusPatch, confirmedBy int64) (*domain.TourBooking, error) {
	for i := range m.created {
		if m.created[i].ID == id {
			m.created[i].Status = patch.Status
			m.created[i].ConfirmedBy = &confirmedBy
			return &m.created[i], nil
		}
	}
	return nil, nil
}

func (m *mockTourRepo) ListDueForReminder(_ context.Context, _ string) ([]domain.TourBooking, error) {
	return nil, nil
}

func (m *mockTourRepo) MarkReminderSent(_ context.Context, _ int64) (bool, error) {
	return true, nil
}

type mockPropertyRepo struct {
	properties map[int64]*domain.Property
}

func (m *mockPropertyRepo) Create(_ context.Context, _ *domain.PropertyReq) (*domain.Property, error) {
	return nil, errors.New("not implemented")
}

func (m *mockPropertyRepo) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	return m.properties[id], nil
}

func (m *mockPropertyRepo) List(_ context.Context, _, _ int) ([]domain.Property, error) {
	return nil, nil
}

func (m *mockPropertyRepo) ListAvailable(_ context.Context) ([]domain.Property, error) {
	return nil, nil
}

func (m *mockPropertyRepo) Update(_ context.Context, _ int64, _ *domain.PropertyPatch) (*domain.Property, error) {
	return nil, nil
}

func (m *mockPropertyRepo) Delete(_ context.Context, _ int64) (bool, error) {
	return false, nil
}

type sentMail struct {
	to         string
	subject    string
	html       string
	attachment *mailer.Attachment
}

type mockMailer struct {
	mu       sync.Mutex
	sent     []sentMail
	fail     bool
	notified chan struct{}
}

func newMockMailer() *mockMailer {
	return &mockMailer{notified: make(chan struct{}, 16)}
}

func (m *mockMailer) Enabled() bool { return true }

func (m *mockMailer) Send(toEmail, _, subject, _, html string) (string, error) {
	return m.record(toEmail, subject, html, nil)
}

func (m *mockMailer) SendWithAttachment(toEmail, _, subject, _, html string, att mailer.Attachment) (string, error) {
	return m.record(toEmail, subject, html, &att)
}

func (m *mockMailer) record(to, subject, html string, att *mailer.Attachment) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.notified <- struct{}{} }()
	if m.fail {
		return "", errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html, attachment: att})
	return "msg-id", nil
}

func (m *mockMailer) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-m.notified:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for email dispatch")
	}
}

func (m *mockMailer) lastSent(t *testing.T) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatal("no mail sent")
	}
	return m.sent[len(m.sent)-1]
}

type mockEventBus struct {
	mu        sync.Mutex
	published []string
}

func (m *mockEventBus) Publish(_ context.Context, subject string, _ interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, subject)
	return nil
}

func (m *mockEventBus) Subscribe(_ string, _ func(msg *events.Message)) error { return nil }
func (m *mockEventBus) QueueSubscribe(_, _ string, _ func(msg *events.Message)) error {
	return nil
}
func (m *mockEventBus) Close() error { return nil }

func (m *mockEventBus) has(subject string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.published {
		if s == subject {
			return true
		}
	}
	return false
}

func testConfig() *config.Config {
	return &config.Config{
		Company: config.CompanyConfig{
			Name:    "KCO Properties",
			Address: "123 Main Street, Springfield, IL 62704",
			Phone:   "(217) 555-0100",
			Email:   "info@kcoproperties.com",
			Domain:  "kcoproperties.com",
		},
	}
}

func validTourReq() *domain.TourBookingReq {
	return &domain.TourBookingReq{
		PropertyID:     1,
		FullName:       "Jordan Lee",
		Email:          "jordan@example.com",
		Phone:          "217-555-0134",
		TourDate:       "2025-12-01",
		TourTime:       "14:30",
		NumberOfPeople: 2,
	}
}

func testProperty() *domain.Property {
	return &domain.Property{
		ID:      1,
		Name:    "Maple Court Apartments",
		Address: "456 Maple Ct",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62704",
	}
}

func newTourServiceForTest(mail *mockMailer, bus *mockEventBus) (TourService, *mockTourRepo) {
	tourRepo := &mockTourRepo{}
	propRepo := &mockPropertyRepo{properties: map[int64]*domain.Property{1: testProperty()}}
	return NewTourService(tourRepo, propRepo, mail, bus, testConfig()), tourRepo
}

func TestScheduleTourSendsConfirmationWithInvite(t *testing.T) {
	mail := newMockMailer()
	bus := &mockEventBus{}
	svc, _ := newTourServiceForTest(mail, bus)

	booking, err := svc.ScheduleTour(context.Background(), validTourReq())
	if err != nil {
		t.Fatal(err)
	}
	if booking.Status != domain.TourPending {
		t.Errorf("status = %q, want pending", booking.Status)
	}

	mail.waitForSend(t)
	sent := mail.lastSent(t)
	if sent.to != "jordan@example.com" {
		t.Errorf("sent to %q", sent.to)
	}
	if sent.subject != "Tour Confirmation - Maple Court Apartments on Dec 1, 2025" {
		t.Errorf("subject = %q", sent.subject)
	}
	if sent.attachment == nil {
		t.Fatal("confirmation email missing calendar attachment")
	}
	if sent.attachment.Filename != "tour-invite.ics" {
		t.Errorf("attachment filename = %q", sent.attachment.Filename)
	}
	ics := string(sent.attachment.Content)
	if !strings.Contains(ics, "DTSTART:20251201T143000") {
		t.Errorf("invite missing literal start time:\n%s", ics)
	}

	if !bus.has(events.TourRequested) {
		t.Error("tour requested event not published")
	}
	if !bus.has(events.NotifyOwner) {
		t.Error("owner notification not published")
	}
}

func TestScheduleTourSucceedsWhenEmailFails(t *testing.T) {
	mail := newMockMailer()
	mail.fail = true
	bus := &mockEventBus{}
	svc, repo := newTourServiceForTest(mail, bus)

	booking, err := svc.ScheduleTour(context.Background(), validTourReq())
	if err != nil {
		t.Fatalf("booking must not fail on email error: %v", err)
	}
	if booking == nil || len(repo.created) != 1 {
		t.Fatal("booking not persisted")
	}
	mail.waitForSend(t)
}

func TestScheduleTourDefaultsAttendeesToOne(t *testing.T) {
	mail := newMockMailer()
	svc, _ := newTourServiceForTest(mail, &mockEventBus{})

	req := validTourReq()
	req.NumberOfPeople = 0
	booking, err := svc.ScheduleTour(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if booking.NumberOfPeople != 1 {
		t.Errorf("number_of_people = %d, want 1", booking.NumberOfPeople)
	}
	mail.waitForSend(t)
}

func TestScheduleTourValidation(t *testing.T) {
	svc, _ := newTourServiceForTest(newMockMailer(), &mockEventBus{})

	cases := []struct {
		name   string
		mutate func(*domain.TourBookingReq)
	}{
		{"missing property", func(r *domain.TourBookingReq) { r.PropertyID = 0 }},
		{"missing name", func(r *domain.TourBookingReq) { r.FullName = "  " }},
		{"bad email", func(r *domain.TourBookingReq) { r.Email = "not-an-email" }},
		{"bad phone", func(r *domain.TourBookingReq) { r.Phone = "123" }},
		{"bad date", func(r *domain.TourBookingReq) { r.TourDate = "12/01/2025" }},
		{"bad time", func(r *domain.TourBookingReq) { r.TourTime = "2:30 PM" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validTourReq()
			tc.mutate(req)
			if _, err := svc.ScheduleTour(context.Background(), req); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestScheduleTourUnknownProperty(t *testing.T) {
	svc, repo := newTourServiceForTest(newMockMailer(), &mockEventBus{})

	req := validTourReq()
	req.PropertyID = 999
	booking, err := svc.ScheduleTour(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if booking != nil {
		t.Errorf("booking = %+v, want nil for unknown property", booking)
	}
	if len(repo.created) != 0 {
		t.Error("booking persisted for unknown property")
	}
}

func TestScheduleTourRepeatedSubmissionsCreateSeparateBookings(t *testing.T) {
	mail := newMockMailer()
	svc, repo := newTourServiceForTest(mail, &mockEventBus{})

	for i := 0; i < 2; i++ {
		if _, err := svc.ScheduleTour(context.Background(), validTourReq()); err != nil {
			t.Fatal(err)
		}
		mail.waitForSend(t)
	}
	if len(repo.created) != 2 {
		t.Fatalf("created = %d bookings, want 2", len(repo.created))
	}
}

func TestSendTourReminder(t *testing.T) {
	mail := newMockMailer()
	bus := &mockEventBus{}
	svc, _ := newTourServiceForTest(mail, bus)

	booking := domain.TourBooking{
		ID:         7,
		PropertyID: 1,
		FullName:   "Jordan Lee",
		Email:      "jordan@example.com",
		TourDate:   "2025-12-01",
		TourTime:   "14:30",
		Status:     domain.TourPending,
	}

	if ok := svc.SendTourReminder(context.Background(), booking); !ok {
		t.Fatal("reminder send reported failure")
	}
	sent := mail.lastSent(t)
	if sent.subject != "Reminder: Property Tour Tomorrow at Maple Court Apartments" {
		t.Errorf("subject = %q", sent.subject)
	}
	if sent.attachment != nil {
		t.Error("reminder must not carry an attachment")
	}
	if !bus.has(events.TourReminderSent) {
		t.Error("reminder sent event not published")
	}
}

func TestSendTourReminderFailure(t *testing.T) {
	mail := newMockMailer()
	mail.fail = true
	svc, _ := newTourServiceForTest(mail, &mockEventBus{})

	booking := domain.TourBooking{ID: 7, PropertyID: 1, Email: "jordan@example.com", TourDate: "2025-12-01", TourTime: "14:30"}
	if ok := svc.SendTourReminder(context.Background(), booking); ok {
		t.Fatal("expected failure to be reported")
	}
}

func TestSendTourReminderMissingPropertyFallsBack(t *testing.T) {
	mail := newMockMailer()
	tourRepo := &mockTourRepo{}
	propRepo := &mockPropertyRepo{properties: map[int64]*domain.Property{}}
	svc := NewTourService(tourRepo, propRepo, mail, &mockEventBus{}, testConfig())

	booking := domain.TourBooking{ID: 7, PropertyID: 42, FullName: "Jordan Lee", Email: "jordan@example.com", TourDate: "2025-12-01", TourTime: "14:30"}
	if ok := svc.SendTourReminder(context.Background(), booking); !ok {
		t.Fatal("reminder send reported failure")
	}
	sent := mail.lastSent(t)
	if !strings.Contains(sent.subject, "Property #42") {
		t.Errorf("subject = %q, want placeholder property name", sent.subject)
	}
	if !strings.Contains(sent.html, "Address TBD") {
		t.Error("reminder body missing address fallback")
	}
}

func TestUpdateTourStatus(t *testing.T) {
	mail := newMockMailer()
	bus := &mockEventBus{}
	svc, _ := newTourServiceForTest(mail, bus)

	booking, err := svc.ScheduleTour(context.Background(), validTourReq())
	if err != nil {
		t.Fatal(err)
	}
	mail.waitForSend(t)

	updated, err := svc.UpdateTourStatus(context.Background(), booking.ID, domain.TourStatusPatch{Status: domain.TourConfirmed}, 99)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != domain.TourConfirmed {
		t.Errorf("status = %q", updated.Status)
	}
	if updated.ConfirmedBy == nil || *updated.ConfirmedBy != 99 {
		t.Error("confirmed_by not recorded")
	}
	if !bus.has(events.TourStatusChanged) {
		t.Error("status change event not published")
	}
}

func TestUpdateTourStatusInvalid(t *testing.T) {
	svc, _ := newTourServiceForTest(newMockMailer(), &mockEventBus{})
	if _, err := svc.UpdateTourStatus(context.Background(), 1, domain.TourStatusPatch{Status: "approved"}, 99); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestUpdateTourStatusNotFound(t *testing.T) {
	svc, _ := newTourServiceForTest(newMockMailer(), &mockEventBus{})
	booking, err := svc.UpdateTourStatus(context.Background(), 404, domain.TourStatusPatch{Status: domain.TourConfirmed}, 99)
	if err != nil {
		t.Fatal(err)
	}
	if booking != nil {
		t.Fatal("expected nil booking for unknown id")
	}
}
