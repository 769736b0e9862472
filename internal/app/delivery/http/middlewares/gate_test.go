package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "gate-test-secret"

type stubFacilityChecker struct {
	enabled map[string]bool
}

func (c *stubFacilityChecker) IsEnabled(ctx context.Context, facilityID string) (bool, error) {
	return c.enabled[facilityID], nil
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: testSecret, ExpTimeInHour: 168},
		Gate: config.Gate{
			PatientLoginPath:  "/login",
			AdminLoginPath:    "/admin/login",
			FacilityLoginPath: "/facility/login",
		},
	}
}

func testRules() []RouteRule {
	return []RouteRule{
		{Prefix: "/api/v1/auth", Class: ClassPublic},
		{Prefix: "/api/v1/emergency", Class: ClassPublic},
		{Prefix: "/api/v1/admin", Class: ClassRoleRestricted, Role: constvars.RoleAdmin, Shape: ShapeAPI},
		{Prefix: "/api/v1/facility", Class: ClassRoleRestricted, Role: constvars.RoleFacility, Shape: ShapeAPI},
		{Prefix: "/api/v1/facility/prescriptions", Class: ClassRoleRestricted, Role: constvars.RoleFacility, Capability: constvars.CapabilityPrescribe, Shape: ShapeAPI},
		{Prefix: "/api/v1/facility/dispenses", Class: ClassRoleRestricted, Role: constvars.RoleFacility, Capability: constvars.CapabilityDispense, Shape: ShapeAPI},
		{Prefix: "/api/v1", Class: ClassAuthenticated, Shape: ShapeAPI},
		{Prefix: "/admin", Class: ClassRoleRestricted, Role: constvars.RoleAdmin, Shape: ShapePage},
		{Prefix: "/dashboard", Class: ClassAuthenticated, Shape: ShapePage},
	}
}

func newGate(t *testing.T, checker *stubFacilityChecker) http.Handler {
	t.Helper()
	if checker == nil {
		checker = &stubFacilityChecker{enabled: map[string]bool{}}
	}
	m := NewMiddlewares(zap.NewNop(), checker, testConfig(), testRules())
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Subject", utils.SubjectIDFromContext(r.Context()))
		w.Header().Set("X-Role", utils.SubjectRoleFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
	return m.AuthorizationGate(inner)
}

func mintToken(t *testing.T, subjectID, role string, capabilities []string) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(subjectID, subjectID+"@example.com", role, capabilities, testSecret, 168)
	require.NoError(t, err)
	return token
}

func TestGatePublicRouteNeedsNoCredential(t *testing.T) {
	gate := newGate(t, nil)

	for _, path := range []string{
		"/api/v1/emergency/7f3e9b1c-4d2a-4f6e-8a1b-0c9d8e7f6a5b",
		"/api/v1/auth/login",
	} {
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGateAPIRouteWithoutTokenReturns401JSON(t *testing.T) {
	gate := newGate(t, nil)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/medicines", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get(constvars.HeaderContentType), constvars.MIMEApplicationJSON)
}

func TestGatePageRouteWithoutSessionRedirectsToLogin(t *testing.T) {
	gate := newGate(t, nil)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/meds?tab=all", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fdashboard%2Fmeds%3Ftab%3Dall", rec.Header().Get(constvars.HeaderLocation))
}

func TestGateAdminPageRedirectsToAdminLogin(t *testing.T) {
	gate := newGate(t, nil)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/facilities", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login?next=%2Fadmin%2Ffacilities", rec.Header().Get(constvars.HeaderLocation))
}

func TestGateRoleMismatchReturns403(t *testing.T) {
	gate := newGate(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/facilities", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+mintToken(t, "patient-1", constvars.RolePatient, nil))

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGateValidSessionInjectsSubject(t *testing.T) {
	gate := newGate(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/medicines", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+mintToken(t, "patient-1", constvars.RolePatient, nil))

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "patient-1", rec.Header().Get("X-Subject"))
	assert.Equal(t, constvars.RolePatient, rec.Header().Get("X-Role"))
}

func TestGateSessionCookieIsAccepted(t *testing.T) {
	gate := newGate(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/medicines", nil)
	req.AddCookie(&http.Cookie{
		Name:  constvars.SessionCookieName,
		Value: mintToken(t, "patient-2", constvars.RolePatient, nil),
	})

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "patient-2", rec.Header().Get("X-Subject"))
}

func TestGateBearerHeaderWinsOverCookie(t *testing.T) {
	gate := newGate(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/medicines", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+mintToken(t, "bearer-subject", constvars.RolePatient, nil))
	req.AddCookie(&http.Cookie{
		Name:  constvars.SessionCookieName,
		Value: mintToken(t, "cookie-subject", constvars.RolePatient, nil),
	})

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.Equal(t, "bearer-subject", rec.Header().Get("X-Subject"))
}

func TestGateGarbageTokenReturns401(t *testing.T) {
	gate := newGate(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/medicines", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+"not.a.jwt")

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateDisabledFacilityIsDeniedDespiteValidToken(t *testing.T) {
	checker := &stubFacilityChecker{enabled: map[string]bool{"fac-on": true, "fac-off": false}}
	gate := newGate(t, checker)

	okReq := httptest.NewRequest(http.MethodGet, "/api/v1/facility/staff", nil)
	okReq.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+mintToken(t, "fac-on", constvars.RoleFacility, []string{constvars.CapabilityPrescribe}))
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, okReq)
	assert.Equal(t, http.StatusOK, rec.Code)

	deniedReq := httptest.NewRequest(http.MethodGet, "/api/v1/facility/staff", nil)
	deniedReq.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+mintToken(t, "fac-off", constvars.RoleFacility, []string{constvars.CapabilityPrescribe}))
	rec = httptest.NewRecorder()
	gate.ServeHTTP(rec, deniedReq)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateCapabilityRulesSplitPrescribeFromDispense(t *testing.T) {
	checker := &stubFacilityChecker{enabled: map[string]bool{"pharmacy-1": true, "hospital-1": true}}
	gate := newGate(t, checker)

	// A pharmacy that can only dispense.
	pharmacyToken := mintToken(t, "pharmacy-1", constvars.RoleFacility, []string{constvars.CapabilityDispense})
	// A hospital that can only prescribe.
	hospitalToken := mintToken(t, "hospital-1", constvars.RoleFacility, []string{constvars.CapabilityPrescribe})

	tests := []struct {
		path  string
		token string
		code  int
	}{
		{"/api/v1/facility/prescriptions", pharmacyToken, http.StatusForbidden},
		{"/api/v1/facility/prescriptions", hospitalToken, http.StatusOK},
		{"/api/v1/facility/dispenses", pharmacyToken, http.StatusOK},
		{"/api/v1/facility/dispenses", hospitalToken, http.StatusForbidden},
		// The plain facility rule carries no capability requirement.
		{"/api/v1/facility/staff", pharmacyToken, http.StatusOK},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, tt.path, nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+tt.token)
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)
		assert.Equal(t, tt.code, rec.Code, tt.path)
	}
}

func TestGateUnlistedPathFailsClosed(t *testing.T) {
	gate := newGate(t, nil)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internal/debug", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClassifyPrecedenceAndSegmentMatching(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), &stubFacilityChecker{}, testConfig(), testRules())

	tests := []struct {
		path  string
		class RouteClass
		role  string
	}{
		// Public wins over the broader authenticated /api/v1 prefix.
		{"/api/v1/emergency/abc", ClassPublic, ""},
		// Longest prefix within a class.
		{"/api/v1/admin/facilities", ClassRoleRestricted, constvars.RoleAdmin},
		{"/api/v1/medicines", ClassAuthenticated, ""},
		// Segment matching: /admin must not cover /administrator.
		{"/administrator", ClassAuthenticated, ""},
		{"/admin", ClassRoleRestricted, constvars.RoleAdmin},
		// Nothing matches: fail closed.
		{"/metrics", ClassAuthenticated, ""},
	}

	for _, tt := range tests {
		rule := m.classify(tt.path)
		assert.Equal(t, tt.class, rule.Class, tt.path)
		assert.Equal(t, tt.role, rule.Role, tt.path)
	}
}
