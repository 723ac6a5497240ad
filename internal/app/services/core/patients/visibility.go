package patients

import (
	"time"

	"clinicore-service/internal/app/models"
)

// FilterVisible hides patients whose card is not currently usable from
// clinical and operational roles. Front-desk roles see the full population so
// they can remediate expired, suspended and unactivated cards. Input order is
// preserved.
func FilterVisible(patientList []models.Patient, role models.Role, now time.Time) ([]models.Patient, error) {
	if role.SeesAllCardStates() {
		return patientList, nil
	}

	visible := make([]models.Patient, 0, len(patientList))
	for i := range patientList {
		classification, err := ClassifyCard(&patientList[i], now)
		if err != nil {
			return nil, err
		}
		if classification.Usable() {
			visible = append(visible, patientList[i])
		}
	}
	return visible, nil
}
