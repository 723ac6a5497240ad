package labtests

import (
	"context"
	"fmt"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/patients"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
)

type labTestUsecase struct {
	LabTestRepository contracts.LabTestRepository
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
	StorageService    contracts.StorageService
	QueuePublisher    contracts.QueuePublisher
	InternalConfig    *config.InternalConfig
	now               func() time.Time
}

func NewLabTestUsecase(
	labTestMongoRepository contracts.LabTestRepository,
	patientMongoRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	storageService contracts.StorageService,
	queuePublisher contracts.QueuePublisher,
	internalConfig *config.InternalConfig,
) contracts.LabTestUsecase {
	return &labTestUsecase{
		LabTestRepository: labTestMongoRepository,
		PatientRepository: patientMongoRepository,
		SessionService:    sessionService,
		StorageService:    storageService,
		QueuePublisher:    queuePublisher,
		InternalConfig:    internalConfig,
		now:               time.Now,
	}
}

// labTestCompletedEvent notifies the requesting doctor's inbox consumer that
// results are ready.
type labTestCompletedEvent struct {
	LabTestID      string    `json:"lab_test_id"`
	PatientID      string    `json:"patient_id"`
	DoctorID       string    `json:"doctor_id"`
	TestName       string    `json:"test_name"`
	ResultsFileURL string    `json:"results_file_url,omitempty"`
	CompletedAt    time.Time `json:"completed_at"`
}

func (uc *labTestUsecase) ListLabTests(ctx context.Context, sessionData string) ([]responses.LabTestDetail, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var labTestList []models.LabTest
	switch session.Role {
	case models.RoleDoctor:
		labTestList, err = uc.LabTestRepository.FindByDoctor(ctx, session.UserID)
	default:
		labTestList, err = uc.LabTestRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	patientCache := map[string]*models.Patient{}
	details := make([]responses.LabTestDetail, 0, len(labTestList))
	for _, labTest := range labTestList {
		patient, cached := patientCache[labTest.PatientID]
		if !cached {
			patient, err = uc.PatientRepository.FindByID(ctx, labTest.PatientID)
			if err != nil {
				return nil, err
			}
			patientCache[labTest.PatientID] = patient
		}
		details = append(details, responses.LabTestDetail{
			LabTest: labTest,
			Patient: patient,
		})
	}
	return details, nil
}

func (uc *labTestUsecase) RequestLabTest(ctx context.Context, sessionData string, request *requests.CreateLabTest) (*responses.CreateLabTest, error) {
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

	labTest := &models.LabTest{
		PatientID:     request.PatientID,
		DoctorID:      session.UserID,
		AppointmentID: request.AppointmentID,
		TestName:      request.TestName,
		TestType:      models.LabTestType(request.TestType),
		Status:        models.LabTestRequested,
		Notes:         request.Notes,
	}
	labTest.SetCreatedAtUpdatedAt()

	labTestID, err := uc.LabTestRepository.CreateLabTest(ctx, labTest)
	if err != nil {
		return nil, err
	}
	return &responses.CreateLabTest{ID: labTestID}, nil
}

func (uc *labTestUsecase) StartLabTest(ctx context.Context, sessionData string, labTestID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if session.Role != models.RoleLabTechnician {
		return exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	labTest, err := uc.LabTestRepository.FindByID(ctx, labTestID)
	if err != nil {
		return err
	}
	if labTest == nil {
		return exceptions.ErrRecordNotExist(nil)
	}
	if labTest.Status != models.LabTestRequested {
		return exceptions.ErrLabTestInvalidStateChange()
	}

	fields := map[string]interface{}{
		"status":       string(models.LabTestInProgress),
		"technicianId": session.UserID,
	}
	return uc.LabTestRepository.UpdateLabTestFields(ctx, labTestID, fields)
}

func (uc *labTestUsecase) CompleteLabTest(ctx context.Context, sessionData string, labTestID string, request *requests.CompleteLabTest, upload *contracts.LabResultUpload) (*responses.CompleteLabTest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != models.RoleLabTechnician {
		return nil, exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	labTest, err := uc.LabTestRepository.FindByID(ctx, labTestID)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, exceptions.ErrRecordNotExist(nil)
	}
	if labTest.Status != models.LabTestInProgress {
		return nil, exceptions.ErrLabTestInvalidStateChange()
	}

	completedAt := uc.now()

	var resultsFileURL string
	if upload != nil {
		objectName := fmt.Sprintf("lab-results/%s/%s", labTestID, upload.FileName)
		resultsFileURL, err = uc.StorageService.UploadLabResult(ctx, objectName, upload.Reader, upload.Size, upload.ContentType)
		if err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{
		"status":       string(models.LabTestCompleted),
		"results":      request.Results,
		"technicianId": session.UserID,
		"completedAt":  completedAt,
	}
	if request.Notes != "" {
		fields["notes"] = request.Notes
	}
	if resultsFileURL != "" {
		fields["resultsFileUrl"] = resultsFileURL
	}
	if err := uc.LabTestRepository.UpdateLabTestFields(ctx, labTestID, fields); err != nil {
		return nil, err
	}

	event := labTestCompletedEvent{
		LabTestID:      labTestID,
		PatientID:      labTest.PatientID,
		DoctorID:       labTest.DoctorID,
		TestName:       labTest.TestName,
		ResultsFileURL: resultsFileURL,
		CompletedAt:    completedAt,
	}
	if err := uc.QueuePublisher.Publish(ctx, uc.InternalConfig.App.LabResultNotificationQueue, event); err != nil {
		return nil, err
	}

	return &responses.CompleteLabTest{
		ID:             labTestID,
		ResultsFileURL: resultsFileURL,
	}, nil
}
