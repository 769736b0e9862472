package facilities

import (
	"context"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
)

// FacilityUsecase is the admin console surface. Facility accounts are only
// ever created and toggled here; there is no self-service path.
type FacilityUsecase interface {
	CreateFacility(ctx context.Context, request *requests.CreateFacility) (*responses.Facility, error)
	ListFacilities(ctx context.Context) ([]responses.Facility, error)
	GetFacility(ctx context.Context, facilityID string) (*responses.Facility, error)
	UpdateFacility(ctx context.Context, facilityID string, request *requests.UpdateFacility) (*responses.Facility, error)
	SetEnabled(ctx context.Context, facilityID string, enabled bool) error
	// IsEnabled backs the authorization gate's per-request facility check.
	IsEnabled(ctx context.Context, facilityID string) (bool, error)
}
