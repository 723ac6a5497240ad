package storage

import (
	"context"
	"fmt"
	"io"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorageService struct {
	client       *minio.Client
	driverConfig *config.DriverConfig
}

func NewMinioStorageService(client *minio.Client, driverConfig *config.DriverConfig) contracts.StorageService {
	return &minioStorageService{
		client:       client,
		driverConfig: driverConfig,
	}
}

func (s *minioStorageService) UploadLabResult(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	bucketName := s.driverConfig.Minio.BucketName
	_, err := s.client.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioUploadObject(err, bucketName)
	}
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), bucketName, objectName), nil
}
