package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kcoproperties/leasing-api/pkg/logger"
	"github.com/nats-io/nats.go"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type Subscriber interface {
	Subscribe(subject string, handler func(msg *Message)) error
	QueueSubscribe(subject, queue string, handler func(msg *Message)) error
	Close() error
}

type EventBus interface {
	Publisher
	Subscriber
}

type Message struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	ID        string
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Subscribe(subject string, handler func(msg *Message)) error {
	_, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) QueueSubscribe(subject, queue string, handler func(msg *Message)) error {
	_, err := n.conn.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// Event subjects
const (
	// Tour events
	TourRequested     = "tour.requested"
	TourStatusChanged = "tour.status_changed"
	TourReminderSent  = "tour.reminder_sent"

	// Application events
	ApplicationSubmitted = "application.submitted"
	ApplicationReviewed  = "application.reviewed"

	// Contact events
	ContactReceived = "contact.received"

	// Maintenance events
	MaintenanceOpened = "maintenance.opened"

	// Owner notification
	NotifyOwner = "notify.owner"
)

// Event payloads
type TourRequestedEvent struct {
	BookingID    int64     `json:"booking_id"`
	PropertyID   int64     `json:"property_id"`
	PropertyName string    `json:"property_name"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	TourDate     string    `json:"tour_date"`
	TourTime     string    `json:"tour_time"`
	People       int       `json:"number_of_people"`
	CreatedAt    time.Time `json:"created_at"`
}

type TourStatusChangedEvent struct {
	BookingID int64     `json:"booking_id"`
	Status    string    `json:"status"`
	ChangedBy int64     `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

type TourReminderSentEvent struct {
	BookingID int64     `json:"booking_id"`
	Email     string    `json:"email"`
	TourDate  string    `json:"tour_date"`
	SentAt    time.Time `json:"sent_at"`
}

type ApplicationSubmittedEvent struct {
	ApplicationID int64     `json:"application_id"`
	PropertyID    int64     `json:"property_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
}

type ContactReceivedEvent struct {
	MessageID int64     `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

type OwnerNotification struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
