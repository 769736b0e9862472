package users

import (
	"context"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
	"yuktah-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type userUsecase struct {
	Log             *zap.Logger
	UserRepository  contracts.UserRepository
	TokenRepository contracts.EmergencyTokenRepository
}

func NewUserUsecase(
	log *zap.Logger,
	userRepository contracts.UserRepository,
	tokenRepository contracts.EmergencyTokenRepository,
) UserUsecase {
	return &userUsecase{
		Log:             log,
		UserRepository:  userRepository,
		TokenRepository: tokenRepository,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return &responses.UserProfile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Phone != "" {
		user.Phone = request.Phone
	}

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return &responses.UserProfile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}

func (uc *userUsecase) DeleteProfile(ctx context.Context, userID string) error {
	if err := uc.UserRepository.DeleteByID(ctx, userID); err != nil {
		return err
	}
	// Leave no live token pointing at a deleted account.
	if _, err := uc.TokenRepository.DeactivateAllByPatientID(ctx, userID); err != nil {
		uc.Log.Warn("failed to deactivate emergency tokens for deleted account", zap.Error(err))
	}
	return nil
}
