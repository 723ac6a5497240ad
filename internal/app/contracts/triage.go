package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type TriageUsecase interface {
	ListAssessments(ctx context.Context, sessionData string) ([]responses.TriageAssessmentDetail, error)
	CreateAssessment(ctx context.Context, sessionData string, request *requests.CreateTriageAssessment) (*responses.CreateTriageAssessment, error)
}

type TriageRepository interface {
	FindAll(ctx context.Context) ([]models.TriageAssessment, error)
	FindByID(ctx context.Context, assessmentID string) (*models.TriageAssessment, error)
	CreateAssessment(ctx context.Context, assessmentModel *models.TriageAssessment) (assessmentID string, err error)
}
