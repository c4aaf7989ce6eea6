package domain

import "time"

type TourStatus string

const (
	TourPending   TourStatus = "pending"
	TourConfirmed TourStatus = "confirmed"
	TourCompleted TourStatus = "completed"
	TourCancelled TourStatus = "cancelled"
	TourNoShow    TourStatus = "no_show"
)

func ParseTourStatus(s string) (TourStatus, bool) {
	switch TourStatus(s) {
	case TourPending, TourConfirmed, TourCompleted, TourCancelled, TourNoShow:
		return TourStatus(s), true
	default:
		return "", false
	}
}

// TourBooking is a persisted tour request tying a prospective tenant to a
// property, date, and time. TourDate ("YYYY-MM-DD") and TourTime ("HH:MM")
// are stored as separate plain strings with no timezone attached; anything
// that needs a point in time reconstructs it from both fields.
type TourBooking struct {
	ID             int64      `json:"id"`
	PropertyID     int64      `json:"property_id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	TourDate       string     `json:"tour_date"`
	TourTime       string     `json:"tour_time"`
	NumberOfPeople int        `json:"number_of_people"`
	Message        string     `json:"message,omitempty"`
	Status         TourStatus `json:"status"`
	ReminderSent   bool       `json:"reminder_sent"`
	ConfirmedBy    *int64     `json:"confirmed_by,omitempty"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`
	AdminNotes     string     `json:"admin_notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type TourBookingReq struct {
	PropertyID     int64  `json:"property_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	TourDate       string `json:"tour_date"`
	TourTime       string `json:"tour_time"`
	NumberOfPeople int    `json:"number_of_people,omitempty"`
	Message        string `json:"message,omitempty"`
}

type TourStatusPatch struct {
	Status     TourStatus `json:"status"`
	AdminNotes *string    `json:"admin_notes,omitempty"`
}
