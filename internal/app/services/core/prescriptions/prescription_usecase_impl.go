package prescriptions

import (
	"context"
	"time"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/patients"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	PatientRepository      contracts.PatientRepository
	SessionService         contracts.SessionService
	now                    func() time.Time
}

func NewPrescriptionUsecase(
	prescriptionMongoRepository contracts.PrescriptionRepository,
	patientMongoRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionMongoRepository,
		PatientRepository:      patientMongoRepository,
		SessionService:         sessionService,
		now:                    time.Now,
	}
}

func (uc *prescriptionUsecase) ListPrescriptions(ctx context.Context, sessionData string) ([]responses.PrescriptionDetail, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var prescriptionList []models.Prescription
	switch session.Role {
	case models.RoleDoctor:
		prescriptionList, err = uc.PrescriptionRepository.FindByDoctor(ctx, session.UserID)
	case models.RolePharmacist:
		// The pharmacy queue only shows work still to be done.
		prescriptionList, err = uc.PrescriptionRepository.FindByStatus(ctx, models.PrescriptionPending)
	default:
		prescriptionList, err = uc.PrescriptionRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	patientCache := map[string]*models.Patient{}
	details := make([]responses.PrescriptionDetail, 0, len(prescriptionList))
	for _, prescription := range prescriptionList {
		patient, cached := patientCache[prescription.PatientID]
		if !cached {
			patient, err = uc.PatientRepository.FindByID(ctx, prescription.PatientID)
			if err != nil {
				return nil, err
			}
			patientCache[prescription.PatientID] = patient
		}
		details = append(details, responses.PrescriptionDetail{
			Prescription: prescription,
			Patient:      patient,
		})
	}
	return details, nil
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, sessionData string, request *requests.CreatePrescription) (*responses.CreatePrescription, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != models.RoleDoctor {
		return nil, exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	if patient.AssignedDoctorID != session.UserID {
		return nil, exceptions.ErrAssignedDoctorMismatch()
	}
	if err := patients.EnsureUsable(patient, uc.now()); err != nil {
		return nil, err
	}

	prescription := &models.Prescription{
		PatientID:      request.PatientID,
		DoctorID:       session.UserID,
		AppointmentID:  request.AppointmentID,
		MedicationName: request.MedicationName,
		Dosage:         request.Dosage,
		Frequency:      request.Frequency,
		Duration:       request.Duration,
		Instructions:   request.Instructions,
		Status:         models.PrescriptionPending,
	}
	prescription.SetCreatedAtUpdatedAt()

	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}
	return &responses.CreatePrescription{ID: prescriptionID}, nil
}

func (uc *prescriptionUsecase) DispensePrescription(ctx context.Context, sessionData string, prescriptionID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if session.Role != models.RolePharmacist {
		return exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return exceptions.ErrRecordNotExist(nil)
	}
	if prescription.Status == models.PrescriptionDispensed {
		return exceptions.ErrPrescriptionAlreadyHandled()
	}

	patient, err := uc.PatientRepository.FindByID(ctx, prescription.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotExist(nil)
	}
	if err := patients.EnsureUsable(patient, uc.now()); err != nil {
		return err
	}

	fields := map[string]interface{}{
		"status":      string(models.PrescriptionDispensed),
		"dispensedBy": session.UserID,
	}
	return uc.PrescriptionRepository.UpdatePrescriptionFields(ctx, prescriptionID, fields)
}
