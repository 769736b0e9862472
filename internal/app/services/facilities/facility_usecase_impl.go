package facilities

import (
	"context"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
	"yuktah-service/internal/pkg/exceptions"
	"yuktah-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type facilityUsecase struct {
	Log                *zap.Logger
	FacilityRepository contracts.FacilityRepository
}

func NewFacilityUsecase(log *zap.Logger, facilityRepository contracts.FacilityRepository) FacilityUsecase {
	return &facilityUsecase{
		Log:                log,
		FacilityRepository: facilityRepository,
	}
}

func (uc *facilityUsecase) CreateFacility(ctx context.Context, request *requests.CreateFacility) (*responses.Facility, error) {
	existing, err := uc.FacilityRepository.FindByEmail(ctx, request.Email)
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

	facility := &models.Facility{
		Email:        request.Email,
		Password:     hashedPassword,
		Name:         request.Name,
		Address:      request.Address,
		Capabilities: request.Capabilities,
		Enabled:      true,
	}
	facility.SetCreatedAtUpdatedAt()

	facilityID, err := uc.FacilityRepository.CreateFacility(ctx, facility)
	if err != nil {
		return nil, err
	}
	facility.ID = facilityID

	return buildFacilityResponse(facility), nil
}

func (uc *facilityUsecase) ListFacilities(ctx context.Context) ([]responses.Facility, error) {
	facilities, err := uc.FacilityRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Facility, 0, len(facilities))
	for i := range facilities {
		result = append(result, *buildFacilityResponse(&facilities[i]))
	}
	return result, nil
}

func (uc *facilityUsecase) GetFacility(ctx context.Context, facilityID string) (*responses.Facility, error) {
	facility, err := uc.FacilityRepository.FindByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, exceptions.ErrFacilityNotExist(nil)
	}
	return buildFacilityResponse(facility), nil
}

func (uc *facilityUsecase) UpdateFacility(ctx context.Context, facilityID string, request *requests.UpdateFacility) (*responses.Facility, error) {
	facility, err := uc.FacilityRepository.FindByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, exceptions.ErrFacilityNotExist(nil)
	}

	if request.Name != "" {
		facility.Name = request.Name
	}
	if request.Address != "" {
		facility.Address = request.Address
	}
	if request.Capabilities != nil {
		facility.Capabilities = request.Capabilities
	}

	if err := uc.FacilityRepository.UpdateFacility(ctx, facility); err != nil {
		return nil, err
	}
	return buildFacilityResponse(facility), nil
}

func (uc *facilityUsecase) SetEnabled(ctx context.Context, facilityID string, enabled bool) error {
	return uc.FacilityRepository.SetEnabled(ctx, facilityID, enabled)
}

// IsEnabled is called by the authorization gate on every facility request, so
// a disable takes effect on the next request even though sessions are
// stateless.
func (uc *facilityUsecase) IsEnabled(ctx context.Context, facilityID string) (bool, error) {
	facility, err := uc.FacilityRepository.FindByID(ctx, facilityID)
	if err != nil {
		return false, err
	}
	if facility == nil {
		return false, nil
	}
	return facility.Enabled, nil
}

func buildFacilityResponse(facility *models.Facility) *responses.Facility {
	return &responses.Facility{
		ID:           facility.ID,
		Name:         facility.Name,
		Email:        facility.Email,
		Address:      facility.Address,
		Capabilities: facility.Capabilities,
		Enabled:      facility.Enabled,
	}
}
