package models

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

type Appointment struct {
	ID              string            `json:"id" bson:"_id,omitempty"`
	PatientID       string            `json:"patient_id" bson:"patientId"`
	DoctorID        string            `json:"doctor_id" bson:"doctorId"`
	AppointmentDate string            `json:"appointment_date" bson:"appointmentDate"`
	AppointmentTime string            `json:"appointment_time" bson:"appointmentTime"`
	Status          AppointmentStatus `json:"status" bson:"status"`
	Reason          string            `json:"reason,omitempty" bson:"reason,omitempty"`
	Notes           string            `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedBy       string            `json:"created_by" bson:"createdBy"`
	TimeModel       `bson:",inline"`
}
