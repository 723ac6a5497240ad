package triage

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

type triageUsecase struct {
	TriageRepository  contracts.TriageRepository
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
	now               func() time.Time
}

func NewTriageUsecase(
	triageMongoRepository contracts.TriageRepository,
	patientMongoRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
) contracts.TriageUsecase {
	return &triageUsecase{
		TriageRepository:  triageMongoRepository,
		PatientRepository: patientMongoRepository,
		SessionService:    sessionService,
		now:               time.Now,
	}
}

func (uc *triageUsecase) ListAssessments(ctx context.Context, sessionData string) ([]responses.TriageAssessmentDetail, error) {
	if _, err := uc.SessionService.ParseSessionData(ctx, sessionData); err != nil {
		return nil, err
	}

	assessmentList, err := uc.TriageRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	patientCache := map[string]*models.Patient{}
	details := make([]responses.TriageAssessmentDetail, 0, len(assessmentList))
	for _, assessment := range assessmentList {
		patient, cached := patientCache[assessment.PatientID]
		if !cached {
			patient, err = uc.PatientRepository.FindByID(ctx, assessment.PatientID)
			if err != nil {
				return nil, err
			}
			patientCache[assessment.PatientID] = patient
		}
		details = append(details, responses.TriageAssessmentDetail{
			TriageAssessment: assessment,
			Patient:          patient,
		})
	}
	return details, nil
}

func (uc *triageUsecase) CreateAssessment(ctx context.Context, sessionData string, request *requests.CreateTriageAssessment) (*responses.CreateTriageAssessment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != models.RoleTriageOfficer {
		return nil, exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	if err := patients.EnsureUsable(patient, uc.now()); err != nil {
		return nil, err
	}

	assessment := &models.TriageAssessment{
		PatientID:       request.PatientID,
		TriageOfficerID: session.UserID,
		AppointmentID:   request.AppointmentID,
		PriorityLevel:   models.PriorityLevel(request.PriorityLevel),
		ChiefComplaint:  request.ChiefComplaint,
		VitalSigns: models.VitalSigns{
			Temperature:            request.VitalSigns.Temperature,
			BloodPressureSystolic:  request.VitalSigns.BloodPressureSystolic,
			BloodPressureDiastolic: request.VitalSigns.BloodPressureDiastolic,
			HeartRate:              request.VitalSigns.HeartRate,
			RespiratoryRate:        request.VitalSigns.RespiratoryRate,
			OxygenSaturation:       request.VitalSigns.OxygenSaturation,
			PainScale:              request.VitalSigns.PainScale,
		},
		Symptoms:          request.Symptoms,
		AssessmentNotes:   request.AssessmentNotes,
		RecommendedAction: request.RecommendedAction,
		EstimatedWaitTime: request.EstimatedWaitTime,
	}
	assessment.SetCreatedAtUpdatedAt()

	assessmentID, err := uc.TriageRepository.CreateAssessment(ctx, assessment)
	if err != nil {
		return nil, err
	}
	return &responses.CreateTriageAssessment{ID: assessmentID}, nil
}
