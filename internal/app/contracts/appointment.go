package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, sessionData string) ([]responses.AppointmentDetail, error)
	CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointment) (*responses.CreateAppointment, error)
	UpdateAppointmentStatus(ctx context.Context, sessionData string, appointmentID string, request *requests.UpdateAppointmentStatus) error
}

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	UpdateAppointmentFields(ctx context.Context, appointmentID string, fields map[string]interface{}) error
}
