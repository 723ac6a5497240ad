package contracts

import (
	"context"
	"io"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type LabResultUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type LabTestUsecase interface {
	ListLabTests(ctx context.Context, sessionData string) ([]responses.LabTestDetail, error)
	RequestLabTest(ctx context.Context, sessionData string, request *requests.CreateLabTest) (*responses.CreateLabTest, error)
	StartLabTest(ctx context.Context, sessionData string, labTestID string) error
	CompleteLabTest(ctx context.Context, sessionData string, labTestID string, request *requests.CompleteLabTest, upload *LabResultUpload) (*responses.CompleteLabTest, error)
}

type LabTestRepository interface {
	FindAll(ctx context.Context) ([]models.LabTest, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.LabTest, error)
	FindByID(ctx context.Context, labTestID string) (*models.LabTest, error)
	CreateLabTest(ctx context.Context, labTestModel *models.LabTest) (labTestID string, err error)
	UpdateLabTestFields(ctx context.Context, labTestID string, fields map[string]interface{}) error
}
