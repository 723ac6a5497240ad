package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	ListPrescriptions(ctx context.Context, sessionData string) ([]responses.PrescriptionDetail, error)
	CreatePrescription(ctx context.Context, sessionData string, request *requests.CreatePrescription) (*responses.CreatePrescription, error)
	DispensePrescription(ctx context.Context, sessionData string, prescriptionID string) error
}

type PrescriptionRepository interface {
	FindAll(ctx context.Context) ([]models.Prescription, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error)
	FindByStatus(ctx context.Context, status models.PrescriptionStatus) ([]models.Prescription, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	CreatePrescription(ctx context.Context, prescriptionModel *models.Prescription) (prescriptionID string, err error)
	UpdatePrescriptionFields(ctx context.Context, prescriptionID string, fields map[string]interface{}) error
}
