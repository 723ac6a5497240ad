package patients

import (
	"context"
	"testing"
	"time"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessionService hands back a fixed session regardless of the payload.
type stubSessionService struct {
	session *models.Session
}

func (s *stubSessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	return s.session, nil
}

func (s *stubSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *stubSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return s.session, nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

// stubPatientRepository keeps patients in insertion order, which the real
// repository guarantees to be newest-first.
type stubPatientRepository struct {
	patients []models.Patient
}

func (r *stubPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return append([]models.Patient(nil), r.patients...), nil
}

func (r *stubPatientRepository) FindByAssignedDoctor(ctx context.Context, doctorID string) ([]models.Patient, error) {
	scoped := make([]models.Patient, 0)
	for _, patient := range r.patients {
		if patient.AssignedDoctorID == doctorID {
			scoped = append(scoped, patient)
		}
	}
	return scoped, nil
}

func (r *stubPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	for i := range r.patients {
		if r.patients[i].ID == patientID {
			patient := r.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (r *stubPatientRepository) FindByClinicPatientID(ctx context.Context, clinicPatientID string) (*models.Patient, error) {
	for i := range r.patients {
		if r.patients[i].PatientID == clinicPatientID {
			patient := r.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (r *stubPatientRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	id := "generated-" + patientModel.PatientID
	patientModel.ID = id
	r.patients = append(r.patients, *patientModel)
	return id, nil
}

func (r *stubPatientRepository) UpdatePatientFields(ctx context.Context, patientID string, fields map[string]interface{}) error {
	for i := range r.patients {
		if r.patients[i].ID != patientID {
			continue
		}
		if value, ok := fields["lastDailyActivation"].(time.Time); ok {
			r.patients[i].LastDailyActivation = &value
		}
		if value, ok := fields["cardStatus"].(string); ok {
			r.patients[i].CardStatus = models.CardStatus(value)
		}
		if value, ok := fields["cardExpiryDate"].(string); ok {
			r.patients[i].CardExpiryDate = value
		}
		return nil
	}
	return exceptions.ErrPatientNotExist(nil)
}

func pageOf(page, pageSize int) *requests.Pagination {
	return &requests.Pagination{Page: page, PageSize: pageSize}
}

func newTestUsecase(repo contracts.PatientRepository, role models.Role, userID string) *patientUsecase {
	return &patientUsecase{
		PatientRepository: repo,
		SessionService:    &stubSessionService{session: &models.Session{SessionID: "s-1", UserID: userID, Role: role}},
		now:               func() time.Time { return testNow },
	}
}

func TestListPatients(t *testing.T) {
	repo := &stubPatientRepository{patients: []models.Patient{
		{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30), AssignedDoctorID: "doc-1"},
		{ID: "m-2", PatientID: "P-2", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(30), AssignedDoctorID: "doc-1"},
		{ID: "m-3", PatientID: "P-3", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(-2), AssignedDoctorID: "doc-1"},
		{ID: "m-4", PatientID: "P-4", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(4), AssignedDoctorID: "doc-2"},
		{ID: "m-5", PatientID: "P-5", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(6), AssignedDoctorID: "doc-1"},
	}}

	t.Run("doctor only sees assigned patients with usable cards", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleDoctor, "doc-1")
		summaries, total, err := uc.ListPatients(context.Background(), "session", "", pageOf(1, 10))
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		ids := make([]string, 0, len(summaries))
		for _, summary := range summaries {
			ids = append(ids, summary.PatientID)
		}
		assert.Equal(t, []string{"P-1", "P-5"}, ids)
	})

	t.Run("receptionist sees the full population in stored order", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")
		summaries, total, err := uc.ListPatients(context.Background(), "session", "", pageOf(1, 10))
		require.NoError(t, err)
		require.Len(t, summaries, 5)
		assert.Equal(t, 5, total)
		assert.Equal(t, "P-1", summaries[0].PatientID)
		assert.Equal(t, "P-5", summaries[4].PatientID)
	})

	t.Run("page window cuts the visible list, total counts all of it", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")
		summaries, total, err := uc.ListPatients(context.Background(), "session", "", pageOf(2, 2))
		require.NoError(t, err)
		assert.Equal(t, 5, total)

		ids := make([]string, 0, len(summaries))
		for _, summary := range summaries {
			ids = append(ids, summary.PatientID)
		}
		assert.Equal(t, []string{"P-3", "P-4"}, ids)

		summaries, total, err = uc.ListPatients(context.Background(), "session", "", pageOf(4, 2))
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Empty(t, summaries, "a page past the end is empty, not an error")
	})

	t.Run("card state filter stacks on top of visibility", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")
		summaries, _, err := uc.ListPatients(context.Background(), "session", CardFilterExpiringSoon, pageOf(1, 10))
		require.NoError(t, err)

		ids := make([]string, 0, len(summaries))
		for _, summary := range summaries {
			ids = append(ids, summary.PatientID)
		}
		assert.Equal(t, []string{"P-4", "P-5"}, ids, "7-day filter keeps the 6-day patient the badge would not flag")
	})

	t.Run("unknown filter is rejected", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")
		_, _, err := uc.ListPatients(context.Background(), "session", "frozen", pageOf(1, 10))
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("summaries omit days until expiry for expired cards", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleAdmin, "adm-1")
		summaries, _, err := uc.ListPatients(context.Background(), "session", "", pageOf(1, 10))
		require.NoError(t, err)

		for _, summary := range summaries {
			switch summary.CardClassification {
			case models.CardExpired, models.CardSuspended:
				assert.Nil(t, summary.DaysUntilExpiry, "patient %s", summary.PatientID)
			default:
				require.NotNil(t, summary.DaysUntilExpiry, "patient %s", summary.PatientID)
				assert.GreaterOrEqual(t, *summary.DaysUntilExpiry, 0)
			}
		}
	})
}

func TestGetPatientByID(t *testing.T) {
	repo := &stubPatientRepository{patients: []models.Patient{
		{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30), AssignedDoctorID: "doc-1"},
		{ID: "m-2", PatientID: "P-2", CardStatus: models.CardStatusExpired, CardExpiryDate: dateFromNow(30), AssignedDoctorID: "doc-1"},
	}}

	t.Run("patient assigned elsewhere reads as not found for a doctor", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleDoctor, "doc-2")
		_, err := uc.GetPatientByID(context.Background(), "session", "m-1")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "existence must not leak outside the doctor's scope")
	})

	t.Run("expired card reads as not found for a clinical role", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleDoctor, "doc-1")
		_, err := uc.GetPatientByID(context.Background(), "session", "m-2")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.NotContains(t, customErr.ClientMessage, "expired", "card state must not leak through the error")
	})

	t.Run("receptionist reads the expired card for remediation", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")
		summary, err := uc.GetPatientByID(context.Background(), "session", "m-2")
		require.NoError(t, err)
		assert.Equal(t, models.CardExpired, summary.CardClassification)
	})

	t.Run("unknown id", func(t *testing.T) {
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")
		_, err := uc.GetPatientByID(context.Background(), "session", "m-99")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestRegisterPatient(t *testing.T) {
	request := &requests.CreatePatient{
		PatientID:      "P-100",
		FirstName:      "Nina",
		LastName:       "Sari",
		DateOfBirth:    "1990-04-12",
		Gender:         "female",
		Phone:          "0800000000",
		Address:        "Jl. Melati 1",
		CardExpiryDate: dateFromNow(365),
	}

	t.Run("receptionist registers a patient with an active card", func(t *testing.T) {
		repo := &stubPatientRepository{}
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")

		response, err := uc.RegisterPatient(context.Background(), "session", request)
		require.NoError(t, err)
		assert.NotEmpty(t, response.ID)

		stored, err := repo.FindByClinicPatientID(context.Background(), "P-100")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, models.CardStatusActive, stored.CardStatus)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("duplicate clinic patient id is rejected", func(t *testing.T) {
		repo := &stubPatientRepository{patients: []models.Patient{{ID: "m-1", PatientID: "P-100"}}}
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")

		_, err := uc.RegisterPatient(context.Background(), "session", request)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("clinical roles cannot register", func(t *testing.T) {
		repo := &stubPatientRepository{}
		uc := newTestUsecase(repo, models.RoleDoctor, "doc-1")

		_, err := uc.RegisterPatient(context.Background(), "session", request)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestActivateCard(t *testing.T) {
	t.Run("activation revives an expired card without touching the expiry date", func(t *testing.T) {
		repo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusExpired, CardExpiryDate: dateFromNow(10)},
		}}
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")

		summary, err := uc.ActivateCard(context.Background(), "session", "m-1")
		require.NoError(t, err)
		assert.Equal(t, models.CardActive, summary.CardClassification)
		assert.Equal(t, models.CardStatusActive, summary.CardStatus)
		assert.Equal(t, dateFromNow(10), summary.CardExpiryDate)
		require.NotNil(t, summary.LastDailyActivation)
	})

	t.Run("date-expired card must also be revived administratively before use", func(t *testing.T) {
		repo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(-3)},
		}}
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")

		summary, err := uc.ActivateCard(context.Background(), "session", "m-1")
		require.NoError(t, err)
		// Status flips to active but the stale expiry date still wins, which
		// is exactly what the front desk needs to see to extend it.
		assert.Equal(t, models.CardStatusActive, summary.CardStatus)
		assert.Equal(t, models.CardExpired, summary.CardClassification)
	})

	t.Run("activating twice in the same day is idempotent", func(t *testing.T) {
		repo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30), DailyActivationRequired: true},
		}}
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")

		first, err := uc.ActivateCard(context.Background(), "session", "m-1")
		require.NoError(t, err)
		second, err := uc.ActivateCard(context.Background(), "session", "m-1")
		require.NoError(t, err)

		assert.Equal(t, models.CardActive, first.CardClassification)
		assert.Equal(t, first.CardClassification, second.CardClassification)
		assert.Equal(t, first.CardStatus, second.CardStatus)
	})

	t.Run("activation leaves a suspension in place", func(t *testing.T) {
		repo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(30)},
		}}
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")

		summary, err := uc.ActivateCard(context.Background(), "session", "m-1")
		require.NoError(t, err)
		assert.Equal(t, models.CardSuspended, summary.CardClassification)
		assert.Equal(t, models.CardStatusSuspended, summary.CardStatus)
	})
}

func TestLiftSuspension(t *testing.T) {
	t.Run("admin lifts a suspension", func(t *testing.T) {
		repo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(30)},
		}}
		uc := newTestUsecase(repo, models.RoleAdmin, "adm-1")

		require.NoError(t, uc.LiftSuspension(context.Background(), "session", "m-1"))

		stored, err := repo.FindByID(context.Background(), "m-1")
		require.NoError(t, err)
		assert.Equal(t, models.CardStatusActive, stored.CardStatus)
	})

	t.Run("receptionist may not", func(t *testing.T) {
		repo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(30)},
		}}
		uc := newTestUsecase(repo, models.RoleReceptionist, "rec-1")

		err := uc.LiftSuspension(context.Background(), "session", "m-1")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("lifting a non-suspended card is a no-op", func(t *testing.T) {
		repo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30)},
		}}
		uc := newTestUsecase(repo, models.RoleAdmin, "adm-1")

		require.NoError(t, uc.LiftSuspension(context.Background(), "session", "m-1"))

		stored, err := repo.FindByID(context.Background(), "m-1")
		require.NoError(t, err)
		assert.Equal(t, models.CardStatusActive, stored.CardStatus)
	})
}
