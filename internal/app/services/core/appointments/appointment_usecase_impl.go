package appointments

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

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	SessionService        contracts.SessionService
	now                   func() time.Time
}

func NewAppointmentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	patientMongoRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentMongoRepository,
		PatientRepository:     patientMongoRepository,
		SessionService:        sessionService,
		now:                   time.Now,
	}
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, sessionData string) ([]responses.AppointmentDetail, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var appointmentList []models.Appointment
	switch session.Role {
	case models.RoleDoctor:
		appointmentList, err = uc.AppointmentRepository.FindByDoctor(ctx, session.UserID)
	default:
		appointmentList, err = uc.AppointmentRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	// Patient is a denormalized enrichment, not an owned child: a missing
	// patient record leaves the field nil instead of failing the listing.
	patientCache := map[string]*models.Patient{}
	details := make([]responses.AppointmentDetail, 0, len(appointmentList))
	for _, appointment := range appointmentList {
		patient, cached := patientCache[appointment.PatientID]
		if !cached {
			patient, err = uc.PatientRepository.FindByID(ctx, appointment.PatientID)
			if err != nil {
				return nil, err
			}
			patientCache[appointment.PatientID] = patient
		}
		details = append(details, responses.AppointmentDetail{
			Appointment: appointment,
			Patient:     patient,
		})
	}
	return details, nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	switch session.Role {
	case models.RoleReceptionist, models.RoleAdmin, models.RoleDoctor:
	default:
		return nil, exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	if session.Role == models.RoleDoctor && patient.AssignedDoctorID != session.UserID {
		return nil, exceptions.ErrAssignedDoctorMismatch()
	}
	if err := patients.EnsureUsable(patient, uc.now()); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:       request.PatientID,
		DoctorID:        request.DoctorID,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
		Status:          models.AppointmentScheduled,
		Reason:          request.Reason,
		Notes:           request.Notes,
		CreatedBy:       session.UserID,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	return &responses.CreateAppointment{ID: appointmentID}, nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, sessionData string, appointmentID string, request *requests.UpdateAppointmentStatus) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	switch session.Role {
	case models.RoleReceptionist, models.RoleAdmin, models.RoleDoctor:
	default:
		return exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrRecordNotExist(nil)
	}
	if session.Role == models.RoleDoctor && appointment.DoctorID != session.UserID {
		return exceptions.ErrAssignedDoctorMismatch()
	}

	fields := map[string]interface{}{
		"status": request.Status,
	}
	if request.Notes != "" {
		fields["notes"] = request.Notes
	}
	return uc.AppointmentRepository.UpdateAppointmentFields(ctx, appointmentID, fields)
}
