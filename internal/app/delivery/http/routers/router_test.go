package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/app/delivery/http/middlewares"
	"yuktah-service/internal/app/services/auth"
	"yuktah-service/internal/app/services/emergencytokens"
	"yuktah-service/internal/app/services/facilities"
	"yuktah-service/internal/app/services/labreports"
	"yuktah-service/internal/app/services/medicalinfo"
	"yuktah-service/internal/app/services/medicines"
	"yuktah-service/internal/app/services/staff"
	"yuktah-service/internal/app/services/users"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/dto/responses"
	"yuktah-service/internal/pkg/exceptions"
	"yuktah-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockEmergencyTokenUsecase struct {
	mock.Mock
}

func (m *MockEmergencyTokenUsecase) Issue(ctx context.Context, patientID string) (*responses.EmergencyToken, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.EmergencyToken), args.Error(1)
}

func (m *MockEmergencyTokenUsecase) Revoke(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

func (m *MockEmergencyTokenUsecase) Resolve(ctx context.Context, token, remoteAddr string) (*responses.EmergencyView, error) {
	args := m.Called(ctx, token, remoteAddr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.EmergencyView), args.Error(1)
}

type allowAllFacilityChecker struct{}

func (allowAllFacilityChecker) IsEnabled(ctx context.Context, facilityID string) (bool, error) {
	return true, nil
}

func routerTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "api",
			Version:        "v1",
			MaxRequests:    100,
		},
		JWT: config.JWT{Secret: "router-test-secret", ExpTimeInHour: 168},
		Gate: config.Gate{
			PatientLoginPath:  "/login",
			AdminLoginPath:    "/admin/login",
			FacilityLoginPath: "/facility/login",
		},
	}
}

func newTestRouter(t *testing.T, emergencyUsecase emergencytokens.EmergencyTokenUsecase) *chi.Mux {
	t.Helper()
	log := zap.NewNop()
	internalConfig := routerTestConfig()

	mw := middlewares.NewMiddlewares(log, allowAllFacilityChecker{}, internalConfig, DefaultRouteRules(internalConfig))

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		mw,
		auth.NewAuthController(log, nil, internalConfig),
		users.NewUserController(log, nil),
		facilities.NewFacilityController(log, nil),
		staff.NewStaffController(log, nil),
		medicines.NewMedicineController(log, nil),
		medicalinfo.NewMedicalInfoController(log, nil),
		labreports.NewLabReportController(log, nil, 10),
		emergencytokens.NewEmergencyTokenController(log, emergencyUsecase, 2),
	)
	return router
}

func TestEmergencyResolveIsReachableWithoutCredentials(t *testing.T) {
	token := "7f3e9b1c-4d2a-4f6e-8a1b-0c9d8e7f6a5b"
	usecase := new(MockEmergencyTokenUsecase)
	usecase.On("Resolve", mock.Anything, token, mock.Anything).Return(&responses.EmergencyView{
		UserName:   "Jane Doe",
		BloodGroup: "O+",
	}, nil)

	router := newTestRouter(t, usecase)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/emergency/"+token, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane Doe")
	assert.Contains(t, rec.Header().Get(constvars.HeaderCacheControl), "max-age=120")
	usecase.AssertExpectations(t)
}

func TestLegacyQRAliasStillResolves(t *testing.T) {
	token := "7f3e9b1c-4d2a-4f6e-8a1b-0c9d8e7f6a5b"
	usecase := new(MockEmergencyTokenUsecase)
	usecase.On("Resolve", mock.Anything, token, mock.Anything).Return(&responses.EmergencyView{UserName: "Jane Doe"}, nil)

	router := newTestRouter(t, usecase)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/qr/"+token, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	usecase.AssertExpectations(t)
}

func TestEmergencyResolveUnknownTokenIs404(t *testing.T) {
	token := "11111111-2222-4333-8444-555555555555"
	usecase := new(MockEmergencyTokenUsecase)
	usecase.On("Resolve", mock.Anything, token, mock.Anything).Return(nil, exceptions.ErrEmergencyTokenNotFound(nil))

	router := newTestRouter(t, usecase)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/emergency/"+token, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIssueTokenRequiresASession(t *testing.T) {
	usecase := new(MockEmergencyTokenUsecase)
	router := newTestRouter(t, usecase)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/emergency-token", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	usecase.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestIssueTokenRequiresThePatientRole(t *testing.T) {
	usecase := new(MockEmergencyTokenUsecase)
	router := newTestRouter(t, usecase)

	adminToken, err := utils.GenerateSessionJWT("admin-1", "admin@example.com", constvars.RoleAdmin, nil, "router-test-secret", 168)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/emergency-token", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+adminToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	usecase.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestIssueTokenSucceedsForAPatient(t *testing.T) {
	usecase := new(MockEmergencyTokenUsecase)
	usecase.On("Issue", mock.Anything, "patient-1").Return(&responses.EmergencyToken{
		Token:     "7f3e9b1c-4d2a-4f6e-8a1b-0c9d8e7f6a5b",
		CreatedAt: "2026-08-28T10:00:00Z",
	}, nil)

	router := newTestRouter(t, usecase)

	patientToken, err := utils.GenerateSessionJWT("patient-1", "jane@example.com", constvars.RolePatient, nil, "router-test-secret", 168)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/emergency-token", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+patientToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	usecase.AssertExpectations(t)
}

func TestAdminSectionRejectsPatients(t *testing.T) {
	router := newTestRouter(t, new(MockEmergencyTokenUsecase))

	patientToken, err := utils.GenerateSessionJWT("patient-1", "jane@example.com", constvars.RolePatient, nil, "router-test-secret", 168)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/facilities", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+patientToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthEndpointIsPublic(t *testing.T) {
	router := newTestRouter(t, new(MockEmergencyTokenUsecase))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
