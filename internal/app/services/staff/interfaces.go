package staff

import (
	"context"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
)

// StaffUsecase manages a facility's own staff roster. Every operation is
// scoped to the calling facility; one facility can never read or edit
// another's records.
type StaffUsecase interface {
	CreateStaff(ctx context.Context, facilityID string, request *requests.CreateStaff) (*responses.Staff, error)
	ListStaff(ctx context.Context, facilityID string) ([]responses.Staff, error)
	UpdateStaff(ctx context.Context, facilityID, staffID string, request *requests.UpdateStaff) (*responses.Staff, error)
	DeleteStaff(ctx context.Context, facilityID, staffID string) error
}
