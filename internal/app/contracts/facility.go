package contracts

import (
	"context"
	"yuktah-service/internal/app/models"
)

type FacilityRepository interface {
	CreateFacility(ctx context.Context, facility *models.Facility) (facilityID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Facility, error)
	FindByID(ctx context.Context, facilityID string) (*models.Facility, error)
	FindAll(ctx context.Context) ([]models.Facility, error)
	UpdateFacility(ctx context.Context, facility *models.Facility) error
	SetEnabled(ctx context.Context, facilityID string, enabled bool) error
}

// FacilityStatusChecker is the narrow view the authorization gate needs:
// whether a facility credential still belongs to an enabled account.
type FacilityStatusChecker interface {
	IsEnabled(ctx context.Context, facilityID string) (bool, error)
}
