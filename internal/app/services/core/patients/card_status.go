package patients

import (
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"
)

// The two expiry windows are deliberately different numbers and must stay
// separate: the 5-day window drives the expiring_soon classification shown on
// patient cards, the 7-day window drives the expiring_soon bucket of the
// list-level card state filter.
const (
	CardExpiryWarningDays = 5
	CardExpiryFilterDays  = 7
)

// Card state filter values accepted by the patient list endpoint.
const (
	CardFilterAll          = "all"
	CardFilterActive       = "active"
	CardFilterExpired      = "expired"
	CardFilterExpiringSoon = "expiring_soon"
)

func ValidCardFilter(filter string) bool {
	switch filter {
	case "", CardFilterAll, CardFilterActive, CardFilterExpired, CardFilterExpiringSoon:
		return true
	}
	return false
}

// ClassifyCard computes the effective card state of a patient at the given
// instant. Rules are mutually exclusive and checked in precedence order:
// suspended, expired, needs_activation, expiring_soon, active. Date
// comparisons are calendar-day granular. An unparsable expiry date fails the
// call instead of silently defaulting, since a defaulted date would
// mis-classify card validity.
func ClassifyCard(patient *models.Patient, now time.Time) (models.CardClassification, error) {
	if patient.CardStatus == models.CardStatusSuspended {
		return models.CardSuspended, nil
	}

	daysLeft, err := DaysUntilExpiry(patient, now)
	if err != nil {
		return "", err
	}

	if patient.CardStatus == models.CardStatusExpired || daysLeft < 0 {
		return models.CardExpired, nil
	}

	if patient.DailyActivationRequired {
		// The stored activation instant is converted into now's location first,
		// so an activation late in the UTC day still counts for the local day.
		if patient.LastDailyActivation == nil || calendarDay(patient.LastDailyActivation.In(now.Location())).Before(calendarDay(now)) {
			return models.CardNeedsActivation, nil
		}
	}

	if daysLeft <= CardExpiryWarningDays {
		return models.CardExpiringSoon, nil
	}

	return models.CardActive, nil
}

// DaysUntilExpiry returns the whole-day difference between the card expiry
// date and today. The result is negative for a date-expired card, so callers
// must not surface it once classification is expired.
func DaysUntilExpiry(patient *models.Patient, now time.Time) (int, error) {
	expiry, err := time.Parse(constvars.DateOnlyLayout, patient.CardExpiryDate)
	if err != nil {
		return 0, exceptions.ErrPatientDateCorrupt(patient.PatientID, patient.CardExpiryDate)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(expiry.Sub(today).Hours() / 24), nil
}

// MatchesCardFilter evaluates the list-level card state filter offered to
// front-desk views. It is independent from ClassifyCard: "active" here means
// administratively active and not date-expired, with no daily-activation or
// warning-window checks.
func MatchesCardFilter(patient *models.Patient, filter string, now time.Time) (bool, error) {
	if filter == "" || filter == CardFilterAll {
		return true, nil
	}

	daysLeft, err := DaysUntilExpiry(patient, now)
	if err != nil {
		return false, err
	}
	dateExpired := daysLeft < 0

	switch filter {
	case CardFilterActive:
		return patient.CardStatus == models.CardStatusActive && !dateExpired, nil
	case CardFilterExpired:
		return patient.CardStatus == models.CardStatusExpired || dateExpired, nil
	case CardFilterExpiringSoon:
		return daysLeft >= 0 && daysLeft <= CardExpiryFilterDays, nil
	default:
		return false, exceptions.ErrCardFilterUnknown(filter)
	}
}

// EnsureUsable rejects clinical work on a patient whose card is not currently
// valid. Suspension gets its own error since remediation goes through an
// administrator rather than the front desk.
func EnsureUsable(patient *models.Patient, now time.Time) error {
	classification, err := ClassifyCard(patient, now)
	if err != nil {
		return err
	}
	if classification == models.CardSuspended {
		return exceptions.ErrPatientCardSuspended()
	}
	if !classification.Usable() {
		return exceptions.ErrPatientCardNotUsable(string(classification))
	}
	return nil
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
