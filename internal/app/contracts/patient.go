package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, sessionData string, cardStateFilter string, pagination *requests.Pagination) (summaries []responses.PatientSummary, total int, err error)
	GetPatientByID(ctx context.Context, sessionData string, patientID string) (*responses.PatientSummary, error)
	RegisterPatient(ctx context.Context, sessionData string, request *requests.CreatePatient) (*responses.CreatePatient, error)
	UpdatePatient(ctx context.Context, sessionData string, patientID string, request *requests.UpdatePatient) error
	ActivateCard(ctx context.Context, sessionData string, patientID string) (*responses.PatientSummary, error)
	LiftSuspension(ctx context.Context, sessionData string, patientID string) error
}

type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByAssignedDoctor(ctx context.Context, doctorID string) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByClinicPatientID(ctx context.Context, clinicPatientID string) (*models.Patient, error)
	CreatePatient(ctx context.Context, patientModel *models.Patient) (patientID string, err error)
	UpdatePatientFields(ctx context.Context, patientID string, fields map[string]interface{}) error
}
