package requests

type CreatePatient struct {
	PatientID             string `json:"patient_id" validate:"required"`
	FirstName             string `json:"first_name" validate:"required"`
	LastName              string `json:"last_name" validate:"required"`
	DateOfBirth           string `json:"date_of_birth" validate:"required,date"`
	Gender                string `json:"gender" validate:"required,oneof=male female other"`
	Phone                 string `json:"phone" validate:"required"`
	Email                 string `json:"email,omitempty" validate:"omitempty,email"`
	Address               string `json:"address" validate:"required"`
	EmergencyContactName  string `json:"emergency_contact_name" validate:"required"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"required"`
	MedicalHistory        string `json:"medical_history,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	ClinicID              string `json:"clinic_id,omitempty"`

	CardExpiryDate          string `json:"card_expiry_date" validate:"required,date"`
	DailyActivationRequired bool   `json:"daily_activation_required"`
	AssignedDoctorID        string `json:"assigned_doctor_id,omitempty"`
}

// UpdatePatient carries a partial update: nil pointers are left untouched,
// set pointers are merged field by field.
type UpdatePatient struct {
	FirstName             *string `json:"first_name,omitempty"`
	LastName              *string `json:"last_name,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	Email                 *string `json:"email,omitempty" validate:"omitempty,email"`
	Address               *string `json:"address,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	MedicalHistory        *string `json:"medical_history,omitempty"`
	Allergies             *string `json:"allergies,omitempty"`

	CardStatus              *string `json:"card_status,omitempty" validate:"omitempty,card_status"`
	CardExpiryDate          *string `json:"card_expiry_date,omitempty" validate:"omitempty,date"`
	DailyActivationRequired *bool   `json:"daily_activation_required,omitempty"`
	AssignedDoctorID        *string `json:"assigned_doctor_id,omitempty"`
}
