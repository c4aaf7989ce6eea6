package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationApproved    ApplicationStatus = "approved"
	ApplicationDenied      ApplicationStatus = "denied"
	ApplicationIncomplete  ApplicationStatus = "incomplete"
)

func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationPending, ApplicationUnderReview, ApplicationApproved, ApplicationDenied, ApplicationIncomplete:
		return ApplicationStatus(s), true
	default:
		return "", false
	}
}

// Application is a rental application. Fee fields are record-keeping only;
// there is no payment gateway integration.
type Application struct {
	ID         int64             `json:"id"`
	PropertyID int64             `json:"property_id"`
	UserID     *int64            `json:"user_id,omitempty"`
	Status     ApplicationStatus `json:"status"`

	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	SSNLast4    string `json:"ssn_last4,omitempty"`

	CurrentAddress        string `json:"current_address,omitempty"`
	MoveInDate            string `json:"move_in_date,omitempty"`
	MoveOutDate           string `json:"move_out_date,omitempty"`
	ReasonForLeaving      string `json:"reason_for_leaving,omitempty"`
	PreviousLandlordName  string `json:"previous_landlord_name,omitempty"`
	PreviousLandlordPhone string `json:"previous_landlord_phone,omitempty"`

	EmployerName      string `json:"employer_name,omitempty"`
	Position          string `json:"position,omitempty"`
	MonthlyIncome     *int64 `json:"monthly_income,omitempty"`
	SupervisorContact string `json:"supervisor_contact,omitempty"`

	AdditionalOccupants   string `json:"additional_occupants,omitempty"`
	Pets                  string `json:"pets,omitempty"`
	Vehicles              string `json:"vehicles,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`

	ConsentGiven   bool       `json:"consent_given"`
	SignatureData  string     `json:"signature_data,omitempty"`
	SignatureDate  *time.Time `json:"signature_date,omitempty"`
	IDDocumentURL  string     `json:"id_document_url,omitempty"`
	IncomeProofURL string     `json:"income_proof_url,omitempty"`

	ApplicationFeePaid   bool   `json:"application_fee_paid"`
	ApplicationFeeAmount *int64 `json:"application_fee_amount,omitempty"`
	PaymentTransactionID string `json:"payment_transaction_id,omitempty"`

	AdminNotes string     `json:"admin_notes,omitempty"`
	ReviewedBy *int64     `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ApplicationReq struct {
	PropertyID int64  `json:"property_id"`
	UserID     *int64 `json:"user_id,omitempty"`

	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	SSNLast4    string `json:"ssn_last4,omitempty"`

	CurrentAddress        string `json:"current_address,omitempty"`
	MoveInDate            string `json:"move_in_date,omitempty"`
	MoveOutDate           string `json:"move_out_date,omitempty"`
	ReasonForLeaving      string `json:"reason_for_leaving,omitempty"`
	PreviousLandlordName  string `json:"previous_landlord_name,omitempty"`
	PreviousLandlordPhone string `json:"previous_landlord_phone,omitempty"`

	EmployerName      string `json:"employer_name,omitempty"`
	Position          string `json:"position,omitempty"`
	MonthlyIncome     *int64 `json:"monthly_income,omitempty"`
	SupervisorContact string `json:"supervisor_contact,omitempty"`

	AdditionalOccupants   string `json:"additional_occupants,omitempty"`
	Pets                  string `json:"pets,omitempty"`
	Vehicles              string `json:"vehicles,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`

	ConsentGiven   bool       `json:"consent_given"`
	SignatureData  string     `json:"signature_data,omitempty"`
	SignatureDate  *time.Time `json:"signature_date,omitempty"`
	IDDocumentURL  string     `json:"id_document_url,omitempty"`
	IncomeProofURL string     `json:"income_proof_url,omitempty"`
}

type ApplicationStatusPatch struct {
	Status     ApplicationStatus `json:"status"`
	AdminNotes *string           `json:"admin_notes,omitempty"`
}
