package domain

import "time"

type MaintenanceUrgency string

const (
	UrgencyLow       MaintenanceUrgency = "low"
	UrgencyMedium    MaintenanceUrgency = "medium"
	UrgencyHigh      MaintenanceUrgency = "high"
	UrgencyEmergency MaintenanceUrgency = "emergency"
)

func ParseMaintenanceUrgency(s string) (MaintenanceUrgency, bool) {
	switch MaintenanceUrgency(s) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency:
		return MaintenanceUrgency(s), true
	default:
		return "", false
	}
}

type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "open"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

func ParseMaintenanceStatus(s string) (MaintenanceStatus, bool) {
	switch MaintenanceStatus(s) {
	case MaintenanceOpen, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return MaintenanceStatus(s), true
	default:
		return "", false
	}
}

type MaintenanceRequest struct {
	ID          int64              `json:"id"`
	PropertyID  int64              `json:"property_id"`
	TenantID    int64              `json:"tenant_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Urgency     MaintenanceUrgency `json:"urgency"`
	Status      MaintenanceStatus  `json:"status"`
	Images      string             `json:"images,omitempty"`
	AssignedTo  *int64             `json:"assigned_to,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	AdminNotes  string             `json:"admin_notes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type MaintenanceReq struct {
	PropertyID  int64              `json:"property_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Urgency     MaintenanceUrgency `json:"urgency"`
	Images      string             `json:"images,omitempty"`
}

type MaintenancePatch struct {
	Status     *MaintenanceStatus `json:"status,omitempty"`
	AssignedTo *int64             `json:"assigned_to,omitempty"`
	AdminNotes *string            `json:"admin_notes,omitempty"`
}
