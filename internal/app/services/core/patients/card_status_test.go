package patients

import (
	"testing"
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)

func dateFromNow(days int) string {
	return testNow.AddDate(0, 0, days).Format(constvars.DateOnlyLayout)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestClassifyCard(t *testing.T) {
	t.Run("suspended wins over every other rule", func(t *testing.T) {
		yesterday := testNow.AddDate(0, 0, -1)
		cases := []models.Patient{
			{PatientID: "P-1", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(30)},
			{PatientID: "P-2", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(-10)},
			{PatientID: "P-3", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(3), DailyActivationRequired: true},
			{PatientID: "P-4", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(30), DailyActivationRequired: true, LastDailyActivation: timePtr(yesterday)},
		}
		for _, patient := range cases {
			classification, err := ClassifyCard(&patient, testNow)
			require.NoError(t, err)
			assert.Equal(t, models.CardSuspended, classification, "patient %s", patient.PatientID)
		}
	})

	t.Run("expiry date in the past beats an active status", func(t *testing.T) {
		patient := models.Patient{
			PatientID:      "P-10",
			CardStatus:     models.CardStatusActive,
			CardExpiryDate: dateFromNow(-1),
		}
		classification, err := ClassifyCard(&patient, testNow)
		require.NoError(t, err)
		assert.Equal(t, models.CardExpired, classification)
	})

	t.Run("administrative expired status wins even with a future expiry date", func(t *testing.T) {
		patient := models.Patient{
			PatientID:      "P-11",
			CardStatus:     models.CardStatusExpired,
			CardExpiryDate: dateFromNow(30),
		}
		classification, err := ClassifyCard(&patient, testNow)
		require.NoError(t, err)
		assert.Equal(t, models.CardExpired, classification)
	})

	t.Run("daily activation required", func(t *testing.T) {
		base := models.Patient{
			PatientID:               "P-20",
			CardStatus:              models.CardStatusActive,
			CardExpiryDate:          dateFromNow(30),
			DailyActivationRequired: true,
		}

		t.Run("never activated", func(t *testing.T) {
			patient := base
			classification, err := ClassifyCard(&patient, testNow)
			require.NoError(t, err)
			assert.Equal(t, models.CardNeedsActivation, classification)
		})

		t.Run("activated yesterday", func(t *testing.T) {
			patient := base
			patient.LastDailyActivation = timePtr(testNow.AddDate(0, 0, -1))
			classification, err := ClassifyCard(&patient, testNow)
			require.NoError(t, err)
			assert.Equal(t, models.CardNeedsActivation, classification)
		})

		t.Run("activated earlier today counts, time of day ignored", func(t *testing.T) {
			patient := base
			patient.LastDailyActivation = timePtr(time.Date(2026, 8, 30, 0, 5, 0, 0, time.UTC))
			classification, err := ClassifyCard(&patient, testNow)
			require.NoError(t, err)
			assert.Equal(t, models.CardActive, classification)
		})

		t.Run("activation instant is compared on the local calendar day", func(t *testing.T) {
			jakarta := time.FixedZone("WIB", 7*3600)
			localNow := time.Date(2026, 8, 30, 1, 0, 0, 0, jakarta)

			// 23:00 UTC on the 29th is already the 30th in WIB, so it counts
			// as today's activation.
			patient := base
			patient.LastDailyActivation = timePtr(time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC))
			classification, err := ClassifyCard(&patient, localNow)
			require.NoError(t, err)
			assert.Equal(t, models.CardActive, classification)

			// 10:00 UTC on the 29th is still the 29th in WIB.
			patient.LastDailyActivation = timePtr(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))
			classification, err = ClassifyCard(&patient, localNow)
			require.NoError(t, err)
			assert.Equal(t, models.CardNeedsActivation, classification)
		})

		t.Run("expiry still wins over activation need", func(t *testing.T) {
			patient := base
			patient.CardExpiryDate = dateFromNow(-2)
			classification, err := ClassifyCard(&patient, testNow)
			require.NoError(t, err)
			assert.Equal(t, models.CardExpired, classification)
		})
	})

	t.Run("expiring soon window is five days inclusive", func(t *testing.T) {
		for days, want := range map[int]models.CardClassification{
			0: models.CardExpiringSoon,
			3: models.CardExpiringSoon,
			5: models.CardExpiringSoon,
			6: models.CardActive,
		} {
			patient := models.Patient{
				PatientID:      "P-30",
				CardStatus:     models.CardStatusActive,
				CardExpiryDate: dateFromNow(days),
			}
			classification, err := ClassifyCard(&patient, testNow)
			require.NoError(t, err)
			assert.Equal(t, want, classification, "expiry in %d days", days)
		}
	})

	t.Run("unparsable expiry date fails loudly", func(t *testing.T) {
		patient := models.Patient{
			PatientID:      "P-40",
			CardStatus:     models.CardStatusActive,
			CardExpiryDate: "30/08/2026",
		}
		_, err := ClassifyCard(&patient, testNow)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})
}

func TestDaysUntilExpiry(t *testing.T) {
	patient := models.Patient{PatientID: "P-50", CardExpiryDate: dateFromNow(-3)}
	days, err := DaysUntilExpiry(&patient, testNow)
	require.NoError(t, err)
	assert.Equal(t, -3, days, "past expiry yields a negative day count")

	patient.CardExpiryDate = dateFromNow(7)
	days, err = DaysUntilExpiry(&patient, testNow)
	require.NoError(t, err)
	assert.Equal(t, 7, days)
}

func TestMatchesCardFilter(t *testing.T) {
	t.Run("filter window is seven days, wider than the warning badge", func(t *testing.T) {
		patient := models.Patient{
			PatientID:      "P-60",
			CardStatus:     models.CardStatusActive,
			CardExpiryDate: dateFromNow(7),
		}

		classification, err := ClassifyCard(&patient, testNow)
		require.NoError(t, err)
		assert.Equal(t, models.CardActive, classification, "7 days out is outside the 5-day badge window")

		matches, err := MatchesCardFilter(&patient, CardFilterExpiringSoon, testNow)
		require.NoError(t, err)
		assert.True(t, matches, "but inside the 7-day filter bucket")

		patient.CardExpiryDate = dateFromNow(8)
		matches, err = MatchesCardFilter(&patient, CardFilterExpiringSoon, testNow)
		require.NoError(t, err)
		assert.False(t, matches)
	})

	t.Run("expired bucket covers both administrative and date expiry", func(t *testing.T) {
		administrative := models.Patient{PatientID: "P-61", CardStatus: models.CardStatusExpired, CardExpiryDate: dateFromNow(30)}
		dated := models.Patient{PatientID: "P-62", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(-1)}

		for _, patient := range []models.Patient{administrative, dated} {
			matches, err := MatchesCardFilter(&patient, CardFilterExpired, testNow)
			require.NoError(t, err)
			assert.True(t, matches, "patient %s", patient.PatientID)

			matches, err = MatchesCardFilter(&patient, CardFilterActive, testNow)
			require.NoError(t, err)
			assert.False(t, matches, "patient %s", patient.PatientID)
		}
	})

	t.Run("date-expired patients are not expiring soon", func(t *testing.T) {
		patient := models.Patient{PatientID: "P-63", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(-1)}
		matches, err := MatchesCardFilter(&patient, CardFilterExpiringSoon, testNow)
		require.NoError(t, err)
		assert.False(t, matches)
	})

	t.Run("empty and all match everything", func(t *testing.T) {
		patient := models.Patient{PatientID: "P-64", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(-5)}
		for _, filter := range []string{"", CardFilterAll} {
			matches, err := MatchesCardFilter(&patient, filter, testNow)
			require.NoError(t, err)
			assert.True(t, matches)
		}
	})
}

func TestEnsureUsable(t *testing.T) {
	t.Run("usable states pass", func(t *testing.T) {
		patient := models.Patient{PatientID: "P-70", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(3)}
		assert.NoError(t, EnsureUsable(&patient, testNow))
	})

	t.Run("suspended gets its own error", func(t *testing.T) {
		patient := models.Patient{PatientID: "P-71", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(30)}
		err := EnsureUsable(&patient, testNow)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientCardSuspended, customErr.ClientMessage)
	})

	t.Run("needs activation is rejected", func(t *testing.T) {
		patient := models.Patient{
			PatientID:               "P-72",
			CardStatus:              models.CardStatusActive,
			CardExpiryDate:          dateFromNow(30),
			DailyActivationRequired: true,
		}
		err := EnsureUsable(&patient, testNow)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}
