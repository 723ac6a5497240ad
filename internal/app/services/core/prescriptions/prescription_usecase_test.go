package prescriptions

import (
	"context"
	"testing"
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

func dateFromNow(days int) string {
	return testNow.AddDate(0, 0, days).Format(constvars.DateOnlyLayout)
}

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

type stubPatientRepository struct {
	patients []models.Patient
}

func (r *stubPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return r.patients, nil
}

func (r *stubPatientRepository) FindByAssignedDoctor(ctx context.Context, doctorID string) ([]models.Patient, error) {
	return r.patients, nil
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
	return nil, nil
}

func (r *stubPatientRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	return "", nil
}

func (r *stubPatientRepository) UpdatePatientFields(ctx context.Context, patientID string, fields map[string]interface{}) error {
	return nil
}

type stubPrescriptionRepository struct {
	prescriptions []models.Prescription
	updated       map[string]map[string]interface{}
}

func (r *stubPrescriptionRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	return r.prescriptions, nil
}

func (r *stubPrescriptionRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return r.prescriptions, nil
}

func (r *stubPrescriptionRepository) FindByStatus(ctx context.Context, status models.PrescriptionStatus) ([]models.Prescription, error) {
	matching := make([]models.Prescription, 0)
	for _, prescription := range r.prescriptions {
		if prescription.Status == status {
			matching = append(matching, prescription)
		}
	}
	return matching, nil
}

func (r *stubPrescriptionRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	for i := range r.prescriptions {
		if r.prescriptions[i].ID == prescriptionID {
			prescription := r.prescriptions[i]
			return &prescription, nil
		}
	}
	return nil, nil
}

func (r *stubPrescriptionRepository) CreatePrescription(ctx context.Context, prescriptionModel *models.Prescription) (string, error) {
	prescriptionModel.ID = "rx-new"
	r.prescriptions = append(r.prescriptions, *prescriptionModel)
	return prescriptionModel.ID, nil
}

func (r *stubPrescriptionRepository) UpdatePrescriptionFields(ctx context.Context, prescriptionID string, fields map[string]interface{}) error {
	if r.updated == nil {
		r.updated = map[string]map[string]interface{}{}
	}
	r.updated[prescriptionID] = fields
	return nil
}

func newTestUsecase(prescriptionRepo *stubPrescriptionRepository, patientRepo *stubPatientRepository, role models.Role, userID string) *prescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepo,
		PatientRepository:      patientRepo,
		SessionService:         &stubSessionService{session: &models.Session{SessionID: "s-1", UserID: userID, Role: role}},
		now:                    func() time.Time { return testNow },
	}
}

func TestCreatePrescription(t *testing.T) {
	request := &requests.CreatePrescription{
		PatientID:      "m-1",
		MedicationName: "Amoxicillin",
		Dosage:         "500mg",
		Frequency:      "3x daily",
		Duration:       "7 days",
	}

	t.Run("doctor prescribes for an assigned usable patient", func(t *testing.T) {
		patientRepo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30), AssignedDoctorID: "doc-1"},
		}}
		uc := newTestUsecase(&stubPrescriptionRepository{}, patientRepo, models.RoleDoctor, "doc-1")

		response, err := uc.CreatePrescription(context.Background(), "session", request)
		require.NoError(t, err)
		assert.NotEmpty(t, response.ID)
	})

	t.Run("unassigned doctor is rejected", func(t *testing.T) {
		patientRepo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30), AssignedDoctorID: "doc-2"},
		}}
		uc := newTestUsecase(&stubPrescriptionRepository{}, patientRepo, models.RoleDoctor, "doc-1")

		_, err := uc.CreatePrescription(context.Background(), "session", request)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("unusable card blocks prescribing", func(t *testing.T) {
		patientRepo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30), DailyActivationRequired: true, AssignedDoctorID: "doc-1"},
		}}
		uc := newTestUsecase(&stubPrescriptionRepository{}, patientRepo, models.RoleDoctor, "doc-1")

		_, err := uc.CreatePrescription(context.Background(), "session", request)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("only doctors prescribe", func(t *testing.T) {
		uc := newTestUsecase(&stubPrescriptionRepository{}, &stubPatientRepository{}, models.RolePharmacist, "ph-1")
		_, err := uc.CreatePrescription(context.Background(), "session", request)
		assert.Error(t, err)
	})
}

func TestDispensePrescription(t *testing.T) {
	pendingPrescription := models.Prescription{
		ID:        "rx-1",
		PatientID: "m-1",
		DoctorID:  "doc-1",
		Status:    models.PrescriptionPending,
	}

	t.Run("pharmacist dispenses a pending prescription", func(t *testing.T) {
		prescriptionRepo := &stubPrescriptionRepository{prescriptions: []models.Prescription{pendingPrescription}}
		patientRepo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30)},
		}}
		uc := newTestUsecase(prescriptionRepo, patientRepo, models.RolePharmacist, "ph-1")

		require.NoError(t, uc.DispensePrescription(context.Background(), "session", "rx-1"))

		fields := prescriptionRepo.updated["rx-1"]
		require.NotNil(t, fields)
		assert.Equal(t, string(models.PrescriptionDispensed), fields["status"])
		assert.Equal(t, "ph-1", fields["dispensedBy"])
	})

	t.Run("already dispensed is a conflict", func(t *testing.T) {
		dispensed := pendingPrescription
		dispensed.Status = models.PrescriptionDispensed
		prescriptionRepo := &stubPrescriptionRepository{prescriptions: []models.Prescription{dispensed}}
		uc := newTestUsecase(prescriptionRepo, &stubPatientRepository{}, models.RolePharmacist, "ph-1")

		err := uc.DispensePrescription(context.Background(), "session", "rx-1")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("suspended patient cannot be dispensed to", func(t *testing.T) {
		prescriptionRepo := &stubPrescriptionRepository{prescriptions: []models.Prescription{pendingPrescription}}
		patientRepo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusSuspended, CardExpiryDate: dateFromNow(30)},
		}}
		uc := newTestUsecase(prescriptionRepo, patientRepo, models.RolePharmacist, "ph-1")

		err := uc.DispensePrescription(context.Background(), "session", "rx-1")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientCardSuspended, customErr.ClientMessage)
	})

	t.Run("doctor cannot dispense", func(t *testing.T) {
		prescriptionRepo := &stubPrescriptionRepository{prescriptions: []models.Prescription{pendingPrescription}}
		uc := newTestUsecase(prescriptionRepo, &stubPatientRepository{}, models.RoleDoctor, "doc-1")
		assert.Error(t, uc.DispensePrescription(context.Background(), "session", "rx-1"))
	})

	t.Run("pharmacy queue only lists pending work", func(t *testing.T) {
		dispensed := pendingPrescription
		dispensed.ID = "rx-2"
		dispensed.Status = models.PrescriptionDispensed
		prescriptionRepo := &stubPrescriptionRepository{prescriptions: []models.Prescription{pendingPrescription, dispensed}}
		patientRepo := &stubPatientRepository{patients: []models.Patient{
			{ID: "m-1", PatientID: "P-1", CardStatus: models.CardStatusActive, CardExpiryDate: dateFromNow(30)},
		}}
		uc := newTestUsecase(prescriptionRepo, patientRepo, models.RolePharmacist, "ph-1")

		details, err := uc.ListPrescriptions(context.Background(), "session")
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "rx-1", details[0].ID)
		require.NotNil(t, details[0].Patient)
		assert.Equal(t, "P-1", details[0].Patient.PatientID)
	})
}
