package requests

type CreateAppointment struct {
	PatientID       string `json:"patient_id" validate:"required"`
	DoctorID        string `json:"doctor_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required,date"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Reason          string `json:"reason,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled no_show"`
	Notes  string `json:"notes,omitempty"`
}
