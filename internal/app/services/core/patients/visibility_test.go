package patients

import (
	"testing"

	"clinicore-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedPopulation() []models.Patient {
	return []models.Patient{
		{PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30)},
		{PatientID: "P-2", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(30)},
		{PatientID: "P-3", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(-1)},
		{PatientID: "P-4", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(4)},
		{PatientID: "P-5", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30), DailyActivationRequired: true},
		{PatientID: "P-6", CardStatus: models.CardStatusExpired, CardExpiryDate: dateFromNow(30)},
	}
}

func patientIDs(patientList []models.Patient) []string {
	ids := make([]string, 0, len(patientList))
	for _, patient := range patientList {
		ids = append(ids, patient.PatientID)
	}
	return ids
}

func TestFilterVisible(t *testing.T) {
	t.Run("receptionist sees everything unchanged", func(t *testing.T) {
		input := mixedPopulation()
		visible, err := FilterVisible(input, models.RoleReceptionist, testNow)
		require.NoError(t, err)
		assert.Equal(t, patientIDs(input), patientIDs(visible))
	})

	t.Run("admin sees everything unchanged", func(t *testing.T) {
		input := mixedPopulation()
		visible, err := FilterVisible(input, models.RoleAdmin, testNow)
		require.NoError(t, err)
		assert.Equal(t, patientIDs(input), patientIDs(visible))
	})

	t.Run("clinical roles only see usable cards, order preserved", func(t *testing.T) {
		for _, role := range []models.Role{models.RoleDoctor, models.RoleLabTechnician, models.RolePharmacist, models.RoleTriageOfficer} {
			visible, err := FilterVisible(mixedPopulation(), role, testNow)
			require.NoError(t, err)
			assert.Equal(t, []string{"P-1", "P-4"}, patientIDs(visible), "role %s", role)
		}
	})

	t.Run("corrupt record fails the filtering for clinical roles", func(t *testing.T) {
		input := []models.Patient{
			{PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: "not-a-date"},
		}
		_, err := FilterVisible(input, models.RoleDoctor, testNow)
		assert.Error(t, err)
	})
}
