package responses

import "clinicore-service/internal/app/models"

// PatientSummary decorates a patient record with its computed card
// classification and the remaining days until expiry. DaysUntilExpiry is
// omitted when the card is already expired, since a negative day count must
// not reach presentation code.
type PatientSummary struct {
	models.Patient
	CardClassification models.CardClassification `json:"card_classification"`
	DaysUntilExpiry    *int                      `json:"days_until_expiry,omitempty"`
}

type CreatePatient struct {
	ID string `json:"id"`
}
