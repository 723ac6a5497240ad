package patients

import (
	"context"
	"time"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
	now               func() time.Time
}

func NewPatientUsecase(
	patientMongoRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
		SessionService:    sessionService,
		now:               time.Now,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context, sessionData string, cardStateFilter string, pagination *requests.Pagination) ([]responses.PatientSummary, int, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}
	if !ValidCardFilter(cardStateFilter) {
		return nil, 0, exceptions.ErrCardFilterUnknown(cardStateFilter)
	}

	// Doctors are scoped server-side to their assigned patients, every other
	// role fetches the full clinic population.
	var patientList []models.Patient
	switch session.Role {
	case models.RoleDoctor:
		patientList, err = uc.PatientRepository.FindByAssignedDoctor(ctx, session.UserID)
	default:
		patientList, err = uc.PatientRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, 0, err
	}

	now := uc.now()

	// Scoping and visibility are stacked restrictions: the query narrowed the
	// population, the filter narrows it again by card state.
	patientList, err = FilterVisible(patientList, session.Role, now)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]responses.PatientSummary, 0, len(patientList))
	for i := range patientList {
		matches, err := MatchesCardFilter(&patientList[i], cardStateFilter, now)
		if err != nil {
			return nil, 0, err
		}
		if !matches {
			continue
		}

		summary, err := uc.buildSummary(&patientList[i], now)
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, *summary)
	}

	// The page window is cut after visibility filtering, so totals and page
	// boundaries only count records the caller is allowed to see.
	total := len(summaries)
	start := (pagination.Page - 1) * pagination.PageSize
	if start > total {
		start = total
	}
	end := start + pagination.PageSize
	if end > total {
		end = total
	}
	return summaries[start:end], total, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, sessionData string, patientID string) (*responses.PatientSummary, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	// A patient the visibility rules hide from this caller reads as not
	// found, so clinical roles cannot probe for existence or card state.
	if session.Role == models.RoleDoctor && patient.AssignedDoctorID != session.UserID {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	now := uc.now()
	classification, err := ClassifyCard(patient, now)
	if err != nil {
		return nil, err
	}
	if !session.Role.SeesAllCardStates() && !classification.Usable() {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	return uc.buildSummary(patient, now)
}

func (uc *patientUsecase) RegisterPatient(ctx context.Context, sessionData string, request *requests.CreatePatient) (*responses.CreatePatient, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.Role.SeesAllCardStates() {
		return nil, exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	existing, err := uc.PatientRepository.FindByClinicPatientID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPatientIDAlreadyExist(nil)
	}

	patient := &models.Patient{
		PatientID:             request.PatientID,
		FirstName:             request.FirstName,
		LastName:              request.LastName,
		DateOfBirth:           request.DateOfBirth,
		Gender:                request.Gender,
		Phone:                 request.Phone,
		Email:                 request.Email,
		Address:               request.Address,
		EmergencyContactName:  request.EmergencyContactName,
		EmergencyContactPhone: request.EmergencyContactPhone,
		MedicalHistory:        request.MedicalHistory,
		Allergies:             request.Allergies,
		ClinicID:              request.ClinicID,

		CardStatus:              models.CardStatusActive,
		CardExpiryDate:          request.CardExpiryDate,
		DailyActivationRequired: request.DailyActivationRequired,
		AssignedDoctorID:        request.AssignedDoctorID,
	}
	patient.SetCreatedAtUpdatedAt()

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	return &responses.CreatePatient{ID: patientID}, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, sessionData string, patientID string, request *requests.UpdatePatient) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if !session.Role.SeesAllCardStates() {
		return exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotExist(nil)
	}

	fields := map[string]interface{}{}
	setStringField(fields, "firstName", request.FirstName)
	setStringField(fields, "lastName", request.LastName)
	setStringField(fields, "phone", request.Phone)
	setStringField(fields, "email", request.Email)
	setStringField(fields, "address", request.Address)
	setStringField(fields, "emergencyContactName", request.EmergencyContactName)
	setStringField(fields, "emergencyContactPhone", request.EmergencyContactPhone)
	setStringField(fields, "medicalHistory", request.MedicalHistory)
	setStringField(fields, "allergies", request.Allergies)
	setStringField(fields, "cardStatus", request.CardStatus)
	setStringField(fields, "cardExpiryDate", request.CardExpiryDate)
	setStringField(fields, "assignedDoctorId", request.AssignedDoctorID)
	if request.DailyActivationRequired != nil {
		fields["dailyActivationRequired"] = *request.DailyActivationRequired
	}
	if len(fields) == 0 {
		return nil
	}

	return uc.PatientRepository.UpdatePatientFields(ctx, patientID, fields)
}

// ActivateCard records today's activation event. An administratively expired
// or date-expired card transitions back to active, though the stored expiry
// date is left untouched since extending it is a billing action. Suspension
// is never cleared here, so a suspended patient still classifies as
// suspended after activation.
func (uc *patientUsecase) ActivateCard(ctx context.Context, sessionData string, patientID string) (*responses.PatientSummary, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.Role.SeesAllCardStates() {
		return nil, exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	now := uc.now()
	classification, err := ClassifyCard(patient, now)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"lastDailyActivation": now,
	}
	if patient.CardStatus != models.CardStatusSuspended && classification == models.CardExpired {
		fields["cardStatus"] = string(models.CardStatusActive)
	}

	if err := uc.PatientRepository.UpdatePatientFields(ctx, patientID, fields); err != nil {
		return nil, err
	}

	// Re-fetch so the returned summary reflects the stored state, not a local
	// guess at what the update produced.
	updated, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	return uc.buildSummary(updated, now)
}

// LiftSuspension is the explicit administrative action that clears a
// suspension; card activation deliberately does not.
func (uc *patientUsecase) LiftSuspension(ctx context.Context, sessionData string, patientID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if session.Role != models.RoleAdmin {
		return exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotExist(nil)
	}
	if patient.CardStatus != models.CardStatusSuspended {
		return nil
	}

	fields := map[string]interface{}{
		"cardStatus": string(models.CardStatusActive),
	}
	return uc.PatientRepository.UpdatePatientFields(ctx, patientID, fields)
}

func (uc *patientUsecase) buildSummary(patient *models.Patient, now time.Time) (*responses.PatientSummary, error) {
	classification, err := ClassifyCard(patient, now)
	if err != nil {
		return nil, err
	}

	summary := &responses.PatientSummary{
		Patient:            *patient,
		CardClassification: classification,
	}
	if classification != models.CardExpired && classification != models.CardSuspended {
		daysLeft, err := DaysUntilExpiry(patient, now)
		if err != nil {
			return nil, err
		}
		summary.DaysUntilExpiry = &daysLeft
	}
	return summary, nil
}

func setStringField(fields map[string]interface{}, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}
