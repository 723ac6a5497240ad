package responses

import "clinicore-service/internal/app/models"

// AppointmentDetail embeds the patient as an optional enrichment object; the
// appointment itself only owns the patient reference.
type AppointmentDetail struct {
	models.Appointment
	Patient *models.Patient `json:"patient,omitempty"`
}

type CreateAppointment struct {
	ID string `json:"id"`
}
