package responses

import "clinicore-service/internal/app/models"

type LabTestDetail struct {
	models.LabTest
	Patient *models.Patient `json:"patient,omitempty"`
}

type CreateLabTest struct {
	ID string `json:"id"`
}

type CompleteLabTest struct {
	ID             string `json:"id"`
	ResultsFileURL string `json:"results_file_url,omitempty"`
}
