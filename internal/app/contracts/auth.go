package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionData string) error
	RegisterUser(ctx context.Context, sessionData string, request *requests.RegisterUser) (*responses.RegisterUser, error)
	ListUsersByRole(ctx context.Context, sessionData string, role models.Role) ([]models.User, error)
}
