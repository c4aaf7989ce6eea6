package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kcoproperties/leasing-api/internal/calendar"
	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/internal/mailer"
	"github.com/kcoproperties/leasing-api/internal/repository"
	"github.com/kcoproperties/leasing-api/internal/utils"
	"github.com/kcoproperties/leasing-api/pkg/config"
	"github.com/kcoproperties/leasing-api/pkg/events"
	"github.com/kcoproperties/leasing-api/pkg/logger"
)

type TourService interface {
	ScheduleTour(ctx context.Context, req *domain.TourBookingReq) (*domain.TourBooking, error)
	GetTour(ctx context.Context, id int64) (*domain.TourBooking, error)
	ListTours(ctx context.Context, limit, offset int) ([]domain.TourBooking, error)
	ListToursByProperty(ctx context.Context, propertyID int64) ([]domain.TourBooking, error)
	UpdateTourStatus(ctx context.Context, id int64, patch domain.TourStatusPatch, adminID int64) (*domain.TourBooking, error)
	SendTourReminder(ctx context.Context, booking domain.TourBooking) bool
}

type tourService struct {
	tourRepo     repository.TourRepository
	propertyRepo repository.PropertyRepository
	mail         mailer.Service
	eventBus     events.EventBus
	company      mailer.Company
}

func NewTourService(
	tourRepo repository.TourRepository,
	propertyRepo repository.PropertyRepository,
	mail mailer.Service,
	eventBus events.EventBus,
	config *config.Config,
) TourService {
	return &tourService{
		tourRepo:     tourRepo,
		propertyRepo: propertyRepo,
		mail:         mail,
		eventBus:     eventBus,
		company: mailer.Company{
			Name:    config.Company.Name,
			Address: config.Company.Address,
			Phone:   config.Company.Phone,
			Email:   config.Company.Email,
			Domain:  config.Company.Domain,
		},
	}
}

// ScheduleTour stores the request and kicks off the confirmation email and
// owner notification. The booking is created regardless of whether either
// side effect succeeds; repeated identical submissions are stored as
// separate bookings. Returns (nil, nil) when the property does not exist.
func (s *tourService) ScheduleTour(ctx context.Context, req *domain.TourBookingReq) (*domain.TourBooking, error) {
	if err := s.validateTourRequest(req); err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if property == nil {
		return nil, nil
	}

	people := req.NumberOfPeople
	if people <= 0 {
		people = 1
	}

	booking, err := s.tourRepo.Create(ctx, req, people)
	if err != nil {
		return nil, fmt.Errorf("failed to create tour booking: %w", err)
	}

	email := buildTourEmail(booking, property)

	go s.dispatchConfirmation(email, booking.ID)

	s.notifyOwnerOfTour(ctx, booking, email)

	event := events.TourRequestedEvent{
		BookingID:    booking.ID,
		PropertyID:   booking.PropertyID,
		PropertyName: email.PropertyName,
		FullName:     booking.FullName,
		Email:        booking.Email,
		TourDate:     booking.TourDate,
		TourTime:     booking.TourTime,
		People:       booking.NumberOfPeople,
		CreatedAt:    booking.CreatedAt,
	}
	if err := s.eventBus.Publish(ctx, events.TourRequested, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish tour requested event", "error", err, "booking_id", booking.ID)
	}

	return booking, nil
}

func (s *tourService) GetTour(ctx context.Context, id int64) (*domain.TourBooking, error) {
	return s.tourRepo.GetByID(ctx, id)
}

func (s *tourService) ListTours(ctx context.Context, limit, offset int) ([]domain.TourBooking, error) {
	return s.tourRepo.List(ctx, limit, offset)
}

func (s *tourService) ListToursByProperty(ctx context.Context, propertyID int64) ([]domain.TourBooking, error) {
	return s.tourRepo.ListByProperty(ctx, propertyID)
}

func (s *tourService) UpdateTourStatus(ctx context.Context, id int64, patch domain.TourStatusPatch, adminID int64) (*domain.TourBooking, error) {
	if _, ok := domain.ParseTourStatus(string(patch.Status)); !ok {
		return nil, validationErrorf("invalid tour status %q", patch.Status)
	}

	booking, err := s.tourRepo.UpdateStatus(ctx, id, patch, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to update tour status: %w", err)
	}
	if booking == nil {
		return nil, nil
	}

	event := events.TourStatusChangedEvent{
		BookingID: booking.ID,
		Status:    string(booking.Status),
		ChangedBy: adminID,
		ChangedAt: time.Now(),
	}
	if err := s.eventBus.Publish(ctx, events.TourStatusChanged, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish tour status event", "error", err, "booking_id", booking.ID)
	}

	return booking, nil
}

// SendTourReminder delivers the day-before reminder for one booking and
// reports success only. The sweeper owns the reminder_sent flag.
func (s *tourService) SendTourReminder(ctx context.Context, booking domain.TourBooking) bool {
	email := s.tourEmail(ctx, &booking)

	_, err := s.mail.Send(
		booking.Email,
		booking.FullName,
		mailer.ReminderSubject(email),
		"",
		mailer.ReminderHTML(email, s.company),
	)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to send tour reminder", "error", err, "booking_id", booking.ID)
		return false
	}

	logger.InfoContext(ctx, "Tour reminder sent", "booking_id", booking.ID, "email", booking.Email)

	event := events.TourReminderSentEvent{
		BookingID: booking.ID,
		Email:     booking.Email,
		TourDate:  booking.TourDate,
		SentAt:    time.Now(),
	}
	if err := s.eventBus.Publish(ctx, events.TourReminderSent, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish reminder sent event", "error", err, "booking_id", booking.ID)
	}

	return true
}

// dispatchConfirmation sends the confirmation email with the calendar
// invite attached. Runs in its own goroutine; failure is logged and
// swallowed so the booking response never waits on or reflects it.
func (s *tourService) dispatchConfirmation(email mailer.TourEmail, bookingID int64) {
	ics, err := calendar.Invite(email, s.company, time.Now())
	if err != nil {
		logger.Error("Failed to build calendar invite", "error", err, "booking_id", bookingID)
		return
	}

	_, err = s.mail.SendWithAttachment(
		email.AttendeeEmail,
		email.AttendeeName,
		mailer.ConfirmationSubject(email),
		"",
		mailer.ConfirmationHTML(email, s.company),
		mailer.Attachment{
			Filename: "tour-invite.ics",
			MIMEType: "text/calendar",
			Content:  []byte(ics),
		},
	)
	if err != nil {
		logger.Error("Failed to send tour confirmation email", "error", err, "booking_id", bookingID)
		return
	}

	logger.Info("Tour confirmation email sent", "booking_id", bookingID, "email", email.AttendeeEmail)
}

func (s *tourService) notifyOwnerOfTour(ctx context.Context, booking *domain.TourBooking, email mailer.TourEmail) {
	content := fmt.Sprintf("Tour request from %s for %s.\n\nDate: %s at %s\nContact: %s | %s",
		booking.FullName, email.PropertyName, booking.TourDate, booking.TourTime, booking.Email, booking.Phone)
	if booking.Message != "" {
		content += "\n\nMessage: " + booking.Message
	}
	content += "\n\nConfirmation email sent to visitor."

	notification := events.OwnerNotification{
		Title:   "New Property Tour Request",
		Content: content,
	}
	if err := s.eventBus.Publish(ctx, events.NotifyOwner, notification); err != nil {
		logger.ErrorContext(ctx, "Failed to send tour notification", "error", err, "booking_id", booking.ID)
	}
}

// tourEmail denormalizes the booking for the email templates. A missing
// property degrades to placeholder text rather than failing the send; a
// booking may outlive its property.
func (s *tourService) tourEmail(ctx context.Context, booking *domain.TourBooking) mailer.TourEmail {
	property, err := s.propertyRepo.GetByID(ctx, booking.PropertyID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load property for tour email", "error", err, "property_id", booking.PropertyID)
	}
	return buildTourEmail(booking, property)
}

func buildTourEmail(booking *domain.TourBooking, property *domain.Property) mailer.TourEmail {
	name := fmt.Sprintf("Property #%d", booking.PropertyID)
	address := "Address TBD"
	if property != nil {
		name = property.Name
		address = property.FullAddress()
	}

	return mailer.TourEmail{
		PropertyName:    name,
		PropertyAddress: address,
		TourDate:        booking.TourDate,
		TourTime:        booking.TourTime,
		AttendeeName:    booking.FullName,
		AttendeeEmail:   booking.Email,
		NumberOfPeople:  booking.NumberOfPeople,
	}
}

func (s *tourService) validateTourRequest(req *domain.TourBookingReq) error {
	req.FullName = utils.NormalizeString(req.FullName)
	req.Email = utils.NormalizeEmail(req.Email)
	req.Phone = utils.NormalizeString(req.Phone)
	req.Message = utils.NormalizeString(req.Message)

	if req.PropertyID <= 0 {
		return validationErrorf("property_id is required")
	}
	if req.FullName == "" {
		return validationErrorf("full_name is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return validationErrorf("invalid email address")
	}
	if !utils.IsValidPhone(req.Phone) {
		return validationErrorf("invalid phone number")
	}
	if _, err := time.Parse("2006-01-02", req.TourDate); err != nil {
		return validationErrorf("tour_date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", req.TourTime); err != nil {
		return validationErrorf("tour_time must be HH:MM")
	}
	return nil
}
