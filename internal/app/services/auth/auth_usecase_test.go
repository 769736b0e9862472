package auth

import (
	"context"
	"testing"
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/exceptions"
	"yuktah-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "auth-test-secret"

type fakeUserStore struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*models.User{}, byID: map[string]*models.User{}}
}

func (s *fakeUserStore) add(user *models.User) {
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
}

func (s *fakeUserStore) CreateUser(ctx context.Context, user *models.User) (string, error) {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	s.add(user)
	return user.ID, nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.byEmail[email], nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return s.byID[userID], nil
}

func (s *fakeUserStore) UpdateUser(ctx context.Context, user *models.User) error { return nil }
func (s *fakeUserStore) DeleteByID(ctx context.Context, userID string) error     { return nil }

type fakeFacilityStore struct {
	byEmail map[string]*models.Facility
	byID    map[string]*models.Facility
}

func newFakeFacilityStore() *fakeFacilityStore {
	return &fakeFacilityStore{byEmail: map[string]*models.Facility{}, byID: map[string]*models.Facility{}}
}

func (s *fakeFacilityStore) add(facility *models.Facility) {
	s.byEmail[facility.Email] = facility
	s.byID[facility.ID] = facility
}

func (s *fakeFacilityStore) CreateFacility(ctx context.Context, facility *models.Facility) (string, error) {
	if facility.ID == "" {
		facility.ID = "facility-" + facility.Email
	}
	s.add(facility)
	return facility.ID, nil
}

func (s *fakeFacilityStore) FindByEmail(ctx context.Context, email string) (*models.Facility, error) {
	return s.byEmail[email], nil
}

func (s *fakeFacilityStore) FindByID(ctx context.Context, facilityID string) (*models.Facility, error) {
	return s.byID[facilityID], nil
}

func (s *fakeFacilityStore) FindAll(ctx context.Context) ([]models.Facility, error) {
	return nil, nil
}

func (s *fakeFacilityStore) UpdateFacility(ctx context.Context, facility *models.Facility) error {
	return nil
}

func (s *fakeFacilityStore) SetEnabled(ctx context.Context, facilityID string, enabled bool) error {
	return nil
}

func newTestAuthUsecase(users *fakeUserStore, facilities *fakeFacilityStore) AuthUsecase {
	cfg := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 168},
	}
	return NewAuthUsecase(zap.NewNop(), users, facilities, cfg)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestSignupCreatesAPatientAccount(t *testing.T) {
	users := newFakeUserStore()
	uc := newTestAuthUsecase(users, newFakeFacilityStore())

	result, err := uc.Signup(context.Background(), &requests.Signup{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Password:       "Sup3rSecret!",
		RetypePassword: "Sup3rSecret!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.UserID)

	created := users.byID[result.UserID]
	require.NotNil(t, created)
	assert.Equal(t, constvars.RolePatient, created.Role)
	assert.NotEqual(t, "Sup3rSecret!", created.Password, "passwords are never stored in clear")
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	users := newFakeUserStore()
	users.add(&models.User{ID: "u1", Email: "jane@example.com", Role: constvars.RolePatient})
	uc := newTestAuthUsecase(users, newFakeFacilityStore())

	_, err := uc.Signup(context.Background(), &requests.Signup{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Password:       "Sup3rSecret!",
		RetypePassword: "Sup3rSecret!",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
}

func TestLoginPatientMintsAPatientSession(t *testing.T) {
	users := newFakeUserStore()
	users.add(&models.User{
		ID:       "patient-1",
		Email:    "jane@example.com",
		Password: mustHash(t, "Sup3rSecret!"),
		Role:     constvars.RolePatient,
	})
	uc := newTestAuthUsecase(users, newFakeFacilityStore())

	result, err := uc.Login(context.Background(), &requests.Login{Email: "jane@example.com", Password: "Sup3rSecret!"})
	require.NoError(t, err)
	assert.Equal(t, constvars.RolePatient, result.Role)

	claims, err := utils.ParseSessionJWT(result.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "patient-1", claims.Subject)
	assert.Equal(t, constvars.RolePatient, claims.Role)
	assert.Empty(t, claims.Capabilities)
}

func TestLoginWrongPasswordIsRejected(t *testing.T) {
	users := newFakeUserStore()
	users.add(&models.User{
		ID:       "patient-1",
		Email:    "jane@example.com",
		Password: mustHash(t, "Sup3rSecret!"),
		Role:     constvars.RolePatient,
	})
	uc := newTestAuthUsecase(users, newFakeFacilityStore())

	_, err := uc.Login(context.Background(), &requests.Login{Email: "jane@example.com", Password: "wrong-password"})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestLoginUnknownEmailIsRejected(t *testing.T) {
	uc := newTestAuthUsecase(newFakeUserStore(), newFakeFacilityStore())

	_, err := uc.Login(context.Background(), &requests.Login{Email: "nobody@example.com", Password: "whatever123"})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestLoginEnabledFacilityCarriesItsCapabilities(t *testing.T) {
	facilities := newFakeFacilityStore()
	facilities.add(&models.Facility{
		ID:           "fac-1",
		Email:        "pharmacy@example.com",
		Password:     mustHash(t, "Pharm4cyPass!"),
		Capabilities: []string{constvars.CapabilityDispense},
		Enabled:      true,
	})
	uc := newTestAuthUsecase(newFakeUserStore(), facilities)

	result, err := uc.Login(context.Background(), &requests.Login{Email: "pharmacy@example.com", Password: "Pharm4cyPass!"})
	require.NoError(t, err)
	assert.Equal(t, constvars.RoleFacility, result.Role)

	claims, err := utils.ParseSessionJWT(result.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, []string{constvars.CapabilityDispense}, claims.Capabilities)
	assert.True(t, claims.HasCapability(constvars.CapabilityDispense))
	assert.False(t, claims.HasCapability(constvars.CapabilityPrescribe))
}

func TestLoginDisabledFacilityFailsWithValidCredential(t *testing.T) {
	facilities := newFakeFacilityStore()
	facilities.add(&models.Facility{
		ID:       "fac-2",
		Email:    "closed@example.com",
		Password: mustHash(t, "St1llValidPass!"),
		Enabled:  false,
	})
	uc := newTestAuthUsecase(newFakeUserStore(), facilities)

	_, err := uc.Login(context.Background(), &requests.Login{Email: "closed@example.com", Password: "St1llValidPass!"})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientAccountDisabled, customErr.ClientMessage)
}

func TestMeReturnsFreshFacilityCapabilities(t *testing.T) {
	facilities := newFakeFacilityStore()
	facilities.add(&models.Facility{
		ID:           "fac-1",
		Email:        "hospital@example.com",
		Capabilities: []string{constvars.CapabilityPrescribe, constvars.CapabilityDispense},
		Enabled:      true,
	})
	uc := newTestAuthUsecase(newFakeUserStore(), facilities)

	me, err := uc.Me(context.Background(), "fac-1", constvars.RoleFacility)
	require.NoError(t, err)
	assert.Equal(t, constvars.RoleFacility, me.Role)
	assert.ElementsMatch(t, []string{constvars.CapabilityPrescribe, constvars.CapabilityDispense}, me.Capabilities)
}
