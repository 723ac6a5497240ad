package models

type PrescriptionStatus string

const (
	PrescriptionPending   PrescriptionStatus = "pending"
	PrescriptionDispensed PrescriptionStatus = "dispensed"
)

type Prescription struct {
	ID             string             `json:"id" bson:"_id,omitempty"`
	PatientID      string             `json:"patient_id" bson:"patientId"`
	DoctorID       string             `json:"doctor_id" bson:"doctorId"`
	AppointmentID  string             `json:"appointment_id,omitempty" bson:"appointmentId,omitempty"`
	MedicationName string             `json:"medication_name" bson:"medicationName"`
	Dosage         string             `json:"dosage" bson:"dosage"`
	Frequency      string             `json:"frequency" bson:"frequency"`
	Duration       string             `json:"duration" bson:"duration"`
	Instructions   string             `json:"instructions,omitempty" bson:"instructions,omitempty"`
	Status         PrescriptionStatus `json:"status" bson:"status"`
	DispensedBy    string             `json:"dispensed_by,omitempty" bson:"dispensedBy,omitempty"`
	TimeModel      `bson:",inline"`
}
