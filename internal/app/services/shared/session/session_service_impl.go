package session

import (
	"context"
	"fmt"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

const sessionKeyPrefix = "session:"

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	expiry := time.Duration(s.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Role:      user.Role,
		ClinicID:  user.ClinicID,
		ExpiresAt: time.Now().Add(expiry),
	}

	err := s.RedisRepository.Set(ctx, sessionKeyPrefix+session.SessionID, session, expiry)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	data, err := s.RedisRepository.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return "", err
	}
	if data == "" {
		return "", exceptions.ErrInvalidSession(nil)
	}
	return data, nil
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	var session models.Session
	err := json.Unmarshal([]byte(sessionData), &session)
	if err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	if !session.Role.Valid() {
		return nil, exceptions.ErrInvalidSession(fmt.Errorf("unknown role %q", session.Role))
	}
	return &session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKeyPrefix+sessionID)
}
