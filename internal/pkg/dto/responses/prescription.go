package responses

import "clinicore-service/internal/app/models"

type PrescriptionDetail struct {
	models.Prescription
	Patient *models.Patient `json:"patient,omitempty"`
}

type CreatePrescription struct {
	ID string `json:"id"`
}
