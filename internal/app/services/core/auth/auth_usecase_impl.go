package auth

import (
	"context"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(
	userMongoRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userMongoRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	tokenExpiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, tokenExpiry)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:     token,
		UserID:    user.ID,
		Role:      string(user.Role),
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

// RegisterUser creates staff accounts. Only administrators may provision new
// users.
func (uc *authUsecase) RegisterUser(ctx context.Context, sessionData string, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != models.RoleAdmin {
		return nil, exceptions.ErrRoleNotAllowed(string(session.Role))
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:     request.Email,
		Password:  hashedPassword,
		Role:      models.Role(request.Role),
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		ClinicID:  request.ClinicID,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return &responses.RegisterUser{UserID: userID}, nil
}

func (uc *authUsecase) ListUsersByRole(ctx context.Context, sessionData string, role models.Role) ([]models.User, error) {
	if _, err := uc.SessionService.ParseSessionData(ctx, sessionData); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, exceptions.ErrRoleNotAllowed(string(role))
	}

	userList, err := uc.UserRepository.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	for i := range userList {
		userList[i].Password = ""
	}
	return userList, nil
}
