package contracts

import (
	"context"
	"yuktah-service/internal/app/models"
)

type StaffRepository interface {
	CreateStaff(ctx context.Context, staff *models.Staff) (staffID string, err error)
	FindByFacilityID(ctx context.Context, facilityID string) ([]models.Staff, error)
	FindByID(ctx context.Context, staffID string) (*models.Staff, error)
	UpdateStaff(ctx context.Context, staff *models.Staff) error
	DeleteByID(ctx context.Context, staffID string) error
}
