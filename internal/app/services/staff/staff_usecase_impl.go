package staff

import (
	"context"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
	"yuktah-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type staffUsecase struct {
	Log             *zap.Logger
	StaffRepository contracts.StaffRepository
}

func NewStaffUsecase(log *zap.Logger, staffRepository contracts.StaffRepository) StaffUsecase {
	return &staffUsecase{
		Log:             log,
		StaffRepository: staffRepository,
	}
}

func (uc *staffUsecase) CreateStaff(ctx context.Context, facilityID string, request *requests.CreateStaff) (*responses.Staff, error) {
	staffRecord := &models.Staff{
		FacilityID: facilityID,
		Name:       request.Name,
		Position:   request.Position,
		Email:      request.Email,
		Phone:      request.Phone,
	}
	staffRecord.SetCreatedAtUpdatedAt()

	staffID, err := uc.StaffRepository.CreateStaff(ctx, staffRecord)
	if err != nil {
		return nil, err
	}
	staffRecord.ID = staffID

	return buildStaffResponse(staffRecord), nil
}

func (uc *staffUsecase) ListStaff(ctx context.Context, facilityID string) ([]responses.Staff, error) {
	staffRecords, err := uc.StaffRepository.FindByFacilityID(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Staff, 0, len(staffRecords))
	for i := range staffRecords {
		result = append(result, *buildStaffResponse(&staffRecords[i]))
	}
	return result, nil
}

func (uc *staffUsecase) UpdateStaff(ctx context.Context, facilityID, staffID string, request *requests.UpdateStaff) (*responses.Staff, error) {
	staffRecord, err := uc.fetchOwned(ctx, facilityID, staffID)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		staffRecord.Name = request.Name
	}
	if request.Position != "" {
		staffRecord.Position = request.Position
	}
	if request.Email != "" {
		staffRecord.Email = request.Email
	}
	if request.Phone != "" {
		staffRecord.Phone = request.Phone
	}

	if err := uc.StaffRepository.UpdateStaff(ctx, staffRecord); err != nil {
		return nil, err
	}
	return buildStaffResponse(staffRecord), nil
}

func (uc *staffUsecase) DeleteStaff(ctx context.Context, facilityID, staffID string) error {
	if _, err := uc.fetchOwned(ctx, facilityID, staffID); err != nil {
		return err
	}
	return uc.StaffRepository.DeleteByID(ctx, staffID)
}

// fetchOwned loads a staff record and verifies it belongs to the calling
// facility. A record owned by someone else reads as not-found.
func (uc *staffUsecase) fetchOwned(ctx context.Context, facilityID, staffID string) (*models.Staff, error) {
	staffRecord, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staffRecord == nil || staffRecord.FacilityID != facilityID {
		return nil, exceptions.ErrDocumentNotFound(nil)
	}
	return staffRecord, nil
}

func buildStaffResponse(staffRecord *models.Staff) *responses.Staff {
	return &responses.Staff{
		ID:       staffRecord.ID,
		Name:     staffRecord.Name,
		Position: staffRecord.Position,
		Email:    staffRecord.Email,
		Phone:    staffRecord.Phone,
	}
}
