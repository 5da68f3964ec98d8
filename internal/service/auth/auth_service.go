package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/creatorlens/creatorlens/internal/domain"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
	"github.com/creatorlens/creatorlens/internal/pkg/logger"
	"github.com/creatorlens/creatorlens/internal/pkg/store"
	"github.com/creatorlens/creatorlens/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) SignupUser(ctx context.Context, request *domain.SignupUserRequest) (*domain.SignupUserResponse, error) {
	username := strings.ToLower(request.Username)

	if _, err := svc.store.GetUserByUsername(ctx, username); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrUsernameTaken
		}
		return nil, err
	}

	user := &domain.User{
		Username:    username,
		DisplayName: request.DisplayName,
		Email:       request.Email,
	}
	if user.DisplayName == "" {
		user.DisplayName = request.Username
	}
	if err := user.UserPassword.Init(request.Password); err != nil {
		return nil, err
	}

	if err := svc.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &domain.SignupUserResponse{User: user, AuthToken: authToken}, nil
}

func (svc *Service) LoginUser(ctx context.Context, request *domain.LoginUserRequest) (*domain.LoginUserResponse, error) {
	user, err := svc.store.GetUserByUsername(ctx, strings.ToLower(request.Username))
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := user.UserPassword.Validate(request.Password); err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &domain.LoginUserResponse{User: user, AuthToken: authToken}, nil
}

func (svc *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return svc.store.GetUserByID(ctx, userID)
}
