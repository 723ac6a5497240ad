package models

import "time"

// CardStatus is the explicit administrative state of a patient access card.
// It is independent of date-derived expiry: an "active" card past its expiry
// date is still treated as expired by the evaluator.
type CardStatus string

const (
	CardStatusActive    CardStatus = "active"
	CardStatusExpired   CardStatus = "expired"
	CardStatusSuspended CardStatus = "suspended"
)

func (s CardStatus) Valid() bool {
	switch s {
	case CardStatusActive, CardStatusExpired, CardStatusSuspended:
		return true
	}
	return false
}

// CardClassification is the effective card state computed from the stored
// fields and the current date.
type CardClassification string

const (
	CardActive          CardClassification = "active"
	CardExpiringSoon    CardClassification = "expiring_soon"
	CardExpired         CardClassification = "expired"
	CardSuspended       CardClassification = "suspended"
	CardNeedsActivation CardClassification = "needs_activation"
)

// Usable reports whether clinical and operational roles may act on a patient
// holding a card in this state.
func (c CardClassification) Usable() bool {
	return c == CardActive || c == CardExpiringSoon
}

type Patient struct {
	ID                    string `json:"id" bson:"_id,omitempty"`
	PatientID             string `json:"patient_id" bson:"patientId"`
	FirstName             string `json:"first_name" bson:"firstName"`
	LastName              string `json:"last_name" bson:"lastName"`
	DateOfBirth           string `json:"date_of_birth" bson:"dateOfBirth"`
	Gender                string `json:"gender" bson:"gender"`
	Phone                 string `json:"phone" bson:"phone"`
	Email                 string `json:"email,omitempty" bson:"email,omitempty"`
	Address               string `json:"address" bson:"address"`
	EmergencyContactName  string `json:"emergency_contact_name" bson:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergency_contact_phone" bson:"emergencyContactPhone"`
	MedicalHistory        string `json:"medical_history,omitempty" bson:"medicalHistory,omitempty"`
	Allergies             string `json:"allergies,omitempty" bson:"allergies,omitempty"`
	ClinicID              string `json:"clinic_id,omitempty" bson:"clinicId,omitempty"`

	CardStatus              CardStatus `json:"card_status" bson:"cardStatus"`
	CardExpiryDate          string     `json:"card_expiry_date" bson:"cardExpiryDate"`
	DailyActivationRequired bool       `json:"daily_activation_required" bson:"dailyActivationRequired"`
	LastDailyActivation     *time.Time `json:"last_daily_activation,omitempty" bson:"lastDailyActivation,omitempty"`

	AssignedDoctorID string `json:"assigned_doctor_id,omitempty" bson:"assignedDoctorId,omitempty"`

	TimeModel `bson:",inline"`
}
