package requests

type CreatePrescription struct {
	PatientID      string `json:"patient_id" validate:"required"`
	AppointmentID  string `json:"appointment_id,omitempty"`
	MedicationName string `json:"medication_name" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Frequency      string `json:"frequency" validate:"required"`
	Duration       string `json:"duration" validate:"required"`
	Instructions   string `json:"instructions,omitempty"`
}
