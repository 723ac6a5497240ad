package responses

import "clinicore-service/internal/app/models"

type TriageAssessmentDetail struct {
	models.TriageAssessment
	Patient *models.Patient `json:"patient,omitempty"`
}

type CreateTriageAssessment struct {
	ID string `json:"id"`
}
