package auth

import (
	"context"
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
	"yuktah-service/internal/pkg/exceptions"
	"yuktah-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	Log                *zap.Logger
	UserRepository     contracts.UserRepository
	FacilityRepository contracts.FacilityRepository
	InternalConfig     *config.InternalConfig
}

func NewAuthUsecase(
	log *zap.Logger,
	userRepository contracts.UserRepository,
	facilityRepository contracts.FacilityRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		Log:                log,
		UserRepository:     userRepository,
		FacilityRepository: facilityRepository,
		InternalConfig:     internalConfig,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error) {
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
		Email:    request.Email,
		Password: hashedPassword,
		Name:     request.Name,
		Role:     constvars.RolePatient,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Signup{UserID: userID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if !utils.CheckPasswordHash(request.Password, user.Password) {
			return nil, exceptions.ErrInvalidEmailOrPassword(nil)
		}
		return uc.mintSession(user.ID, user.Email, user.Role, nil)
	}

	facility, err := uc.FacilityRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, facility.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	// A disabled facility holds a valid credential but may not open a session.
	if !facility.Enabled {
		return nil, exceptions.ErrAccountDisabled(nil)
	}
	return uc.mintSession(facility.ID, facility.Email, constvars.RoleFacility, facility.Capabilities)
}

func (uc *authUsecase) Me(ctx context.Context, subjectID, role string) (*responses.Me, error) {
	if role == constvars.RoleFacility {
		facility, err := uc.FacilityRepository.FindByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		if facility == nil {
			return nil, exceptions.ErrFacilityNotExist(nil)
		}
		return &responses.Me{
			ID:           facility.ID,
			Email:        facility.Email,
			Role:         constvars.RoleFacility,
			Capabilities: facility.Capabilities,
		}, nil
	}

	user, err := uc.UserRepository.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return &responses.Me{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (uc *authUsecase) mintSession(subjectID, email, role string, capabilities []string) (*responses.Login, error) {
	token, err := utils.GenerateSessionJWT(
		subjectID,
		email,
		role,
		capabilities,
		uc.InternalConfig.JWT.Secret,
		uc.InternalConfig.JWT.ExpTimeInHour,
	)
	if err != nil {
		return nil, err
	}
	return &responses.Login{Token: token, Role: role}, nil
}
