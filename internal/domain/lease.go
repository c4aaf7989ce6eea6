package domain

import "time"

type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "active"
	LeaseExpired    LeaseStatus = "expired"
	LeaseTerminated LeaseStatus = "terminated"
	LeasePending    LeaseStatus = "pending"
)

func ParseLeaseStatus(s string) (LeaseStatus, bool) {
	switch LeaseStatus(s) {
	case LeaseActive, LeaseExpired, LeaseTerminated, LeasePending:
		return LeaseStatus(s), true
	default:
		return "", false
	}
}

// Lease is the signed agreement binding a tenant to a property. Rent and
// deposit are stored in cents.
type Lease struct {
	ID               int64       `json:"id"`
	PropertyID       int64       `json:"property_id"`
	TenantID         int64       `json:"tenant_id"`
	ApplicationID    *int64      `json:"application_id,omitempty"`
	LeaseStartDate   time.Time   `json:"lease_start_date"`
	LeaseEndDate     time.Time   `json:"lease_end_date"`
	MonthlyRent      int64       `json:"monthly_rent"`
	SecurityDeposit  int64       `json:"security_deposit"`
	LeaseDocumentURL string      `json:"lease_document_url,omitempty"`
	Status           LeaseStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// TenantLease is the tenant dashboard view: the active lease joined with
// its property, or has_active_lease=false when the tenant has none.
type TenantLease struct {
	HasActiveLease bool      `json:"has_active_lease"`
	Lease          *Lease    `json:"lease,omitempty"`
	Property       *Property `json:"property,omitempty"`
}
