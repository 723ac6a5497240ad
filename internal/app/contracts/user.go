package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
}
