package medicines

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingMedicineUsecase struct {
	prescriptionCalls int
	dispenseCalls     int
	lastFacilityID    string
}

func (u *recordingMedicineUsecase) CreateMedicine(ctx context.Context, patientID string, request *requests.CreateMedicine) (*responses.Medicine, error) {
	return &responses.Medicine{ID: "med-1", Name: request.Name}, nil
}

func (u *recordingMedicineUsecase) ListMedicines(ctx context.Context, patientID string) ([]responses.Medicine, error) {
	return nil, nil
}

func (u *recordingMedicineUsecase) UpdateMedicine(ctx context.Context, patientID, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error) {
	return nil, nil
}

func (u *recordingMedicineUsecase) DeleteMedicine(ctx context.Context, patientID, medicineID string) error {
	return nil
}

func (u *recordingMedicineUsecase) CreatePrescription(ctx context.Context, facilityID string, request *requests.CreatePrescription) (*responses.Prescription, error) {
	u.prescriptionCalls++
	u.lastFacilityID = facilityID
	return &responses.Prescription{ID: "rx-1", PatientEmail: request.PatientEmail, Medicine: request.Medicine}, nil
}

func (u *recordingMedicineUsecase) ListPrescriptions(ctx context.Context, facilityID string) ([]responses.Prescription, error) {
	return nil, nil
}

func (u *recordingMedicineUsecase) CreateDispense(ctx context.Context, facilityID string, request *requests.CreateDispense) (*responses.Dispense, error) {
	u.dispenseCalls++
	u.lastFacilityID = facilityID
	return &responses.Dispense{ID: "disp-1", PatientEmail: request.PatientEmail, Medicine: request.Medicine, Quantity: request.Quantity}, nil
}

func (u *recordingMedicineUsecase) ListDispenses(ctx context.Context, facilityID string) ([]responses.Dispense, error) {
	return nil, nil
}

func facilityRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := req.Context()
	ctx = context.WithValue(ctx, constvars.CONTEXT_SUBJECT_ID_KEY, "fac-1")
	ctx = context.WithValue(ctx, constvars.CONTEXT_SUBJECT_ROLE_KEY, constvars.RoleFacility)
	return req.WithContext(ctx)
}

func TestCreatePrescriptionUsesTheSessionFacility(t *testing.T) {
	usecase := &recordingMedicineUsecase{}
	ctrl := NewMedicineController(zap.NewNop(), usecase)

	req := facilityRequest(http.MethodPost, "/api/v1/facility/prescriptions",
		`{"patient_email":"jane@example.com","medicine":"Amoxicillin","dosage":"500mg"}`)

	rec := httptest.NewRecorder()
	ctrl.CreatePrescription(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, usecase.prescriptionCalls)
	assert.Equal(t, "fac-1", usecase.lastFacilityID, "facility id comes from the session, never the body")
}

func TestCreatePrescriptionRejectsMalformedJSON(t *testing.T) {
	usecase := &recordingMedicineUsecase{}
	ctrl := NewMedicineController(zap.NewNop(), usecase)

	req := facilityRequest(http.MethodPost, "/api/v1/facility/prescriptions", `{"patient_email":`)

	rec := httptest.NewRecorder()
	ctrl.CreatePrescription(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, usecase.prescriptionCalls)
}

func TestCreatePrescriptionRequiresPatientEmail(t *testing.T) {
	usecase := &recordingMedicineUsecase{}
	ctrl := NewMedicineController(zap.NewNop(), usecase)

	req := facilityRequest(http.MethodPost, "/api/v1/facility/prescriptions",
		`{"medicine":"Amoxicillin"}`)

	rec := httptest.NewRecorder()
	ctrl.CreatePrescription(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, usecase.prescriptionCalls)
}

func TestCreateDispenseUsesTheSessionFacility(t *testing.T) {
	usecase := &recordingMedicineUsecase{}
	ctrl := NewMedicineController(zap.NewNop(), usecase)

	req := facilityRequest(http.MethodPost, "/api/v1/facility/dispenses",
		`{"patient_email":"jane@example.com","medicine":"Amoxicillin","quantity":10}`)

	rec := httptest.NewRecorder()
	ctrl.CreateDispense(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, usecase.dispenseCalls)
	assert.Equal(t, "fac-1", usecase.lastFacilityID)
}
