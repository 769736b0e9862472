package staff

import (
	"context"
	"testing"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStaffStore struct {
	records map[string]*models.Staff
}

func newFakeStaffStore() *fakeStaffStore {
	return &fakeStaffStore{records: map[string]*models.Staff{}}
}

func (s *fakeStaffStore) CreateStaff(ctx context.Context, staff *models.Staff) (string, error) {
	if staff.ID == "" {
		staff.ID = "staff-" + staff.Name
	}
	s.records[staff.ID] = staff
	return staff.ID, nil
}

func (s *fakeStaffStore) FindByFacilityID(ctx context.Context, facilityID string) ([]models.Staff, error) {
	var result []models.Staff
	for _, record := range s.records {
		if record.FacilityID == facilityID {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (s *fakeStaffStore) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	return s.records[staffID], nil
}

func (s *fakeStaffStore) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	s.records[staff.ID] = staff
	return nil
}

func (s *fakeStaffStore) DeleteByID(ctx context.Context, staffID string) error {
	delete(s.records, staffID)
	return nil
}

func TestListStaffIsScopedToTheCallingFacility(t *testing.T) {
	store := newFakeStaffStore()
	uc := NewStaffUsecase(zap.NewNop(), store)
	ctx := context.Background()

	_, err := uc.CreateStaff(ctx, "fac-1", &requests.CreateStaff{Name: "Asha", Position: "Nurse"})
	require.NoError(t, err)
	_, err = uc.CreateStaff(ctx, "fac-2", &requests.CreateStaff{Name: "Ravi", Position: "Pharmacist"})
	require.NoError(t, err)

	listed, err := uc.ListStaff(ctx, "fac-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Asha", listed[0].Name)
}

func TestUpdateStaffOwnedByAnotherFacilityReadsAsNotFound(t *testing.T) {
	store := newFakeStaffStore()
	uc := NewStaffUsecase(zap.NewNop(), store)
	ctx := context.Background()

	created, err := uc.CreateStaff(ctx, "fac-1", &requests.CreateStaff{Name: "Asha", Position: "Nurse"})
	require.NoError(t, err)

	_, err = uc.UpdateStaff(ctx, "fac-2", created.ID, &requests.UpdateStaff{Position: "Head Nurse"})
	assert.Error(t, err, "another facility must not see the record at all")

	err = uc.DeleteStaff(ctx, "fac-2", created.ID)
	assert.Error(t, err)

	// The rightful owner still can.
	updated, err := uc.UpdateStaff(ctx, "fac-1", created.ID, &requests.UpdateStaff{Position: "Head Nurse"})
	require.NoError(t, err)
	assert.Equal(t, "Head Nurse", updated.Position)
}
