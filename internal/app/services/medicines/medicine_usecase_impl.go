package medicines

import (
	"context"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
	"yuktah-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type medicineUsecase struct {
	Log                    *zap.Logger
	MedicineRepository     contracts.MedicineRepository
	PrescriptionRepository contracts.PrescriptionRepository
	DispenseRepository     contracts.DispenseRepository
	UserRepository         contracts.UserRepository
}

func NewMedicineUsecase(
	log *zap.Logger,
	medicineRepository contracts.MedicineRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	dispenseRepository contracts.DispenseRepository,
	userRepository contracts.UserRepository,
) MedicineUsecase {
	return &medicineUsecase{
		Log:                    log,
		MedicineRepository:     medicineRepository,
		PrescriptionRepository: prescriptionRepository,
		DispenseRepository:     dispenseRepository,
		UserRepository:         userRepository,
	}
}

func (uc *medicineUsecase) CreateMedicine(ctx context.Context, patientID string, request *requests.CreateMedicine) (*responses.Medicine, error) {
	medicine := &models.Medicine{
		PatientID: patientID,
		Name:      request.Name,
		Dosage:    request.Dosage,
		Schedule:  request.Schedule,
		Notes:     request.Notes,
	}
	medicine.SetCreatedAtUpdatedAt()

	medicineID, err := uc.MedicineRepository.CreateMedicine(ctx, medicine)
	if err != nil {
		return nil, err
	}
	medicine.ID = medicineID

	return buildMedicineResponse(medicine), nil
}

func (uc *medicineUsecase) ListMedicines(ctx context.Context, patientID string) ([]responses.Medicine, error) {
	medicines, err := uc.MedicineRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Medicine, 0, len(medicines))
	for i := range medicines {
		result = append(result, *buildMedicineResponse(&medicines[i]))
	}
	return result, nil
}

func (uc *medicineUsecase) UpdateMedicine(ctx context.Context, patientID, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error) {
	medicine, err := uc.fetchOwned(ctx, patientID, medicineID)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		medicine.Name = request.Name
	}
	if request.Dosage != "" {
		medicine.Dosage = request.Dosage
	}
	if request.Schedule != "" {
		medicine.Schedule = request.Schedule
	}
	if request.Notes != "" {
		medicine.Notes = request.Notes
	}

	if err := uc.MedicineRepository.UpdateMedicine(ctx, medicine); err != nil {
		return nil, err
	}
	return buildMedicineResponse(medicine), nil
}

func (uc *medicineUsecase) DeleteMedicine(ctx context.Context, patientID, medicineID string) error {
	if _, err := uc.fetchOwned(ctx, patientID, medicineID); err != nil {
		return err
	}
	return uc.MedicineRepository.DeleteByID(ctx, medicineID)
}

func (uc *medicineUsecase) CreatePrescription(ctx context.Context, facilityID string, request *requests.CreatePrescription) (*responses.Prescription, error) {
	// The target patient must exist; a typo in the email should surface now,
	// not when the patient next logs in.
	patient, err := uc.UserRepository.FindByEmail(ctx, request.PatientEmail)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	prescription := &models.Prescription{
		FacilityID:   facilityID,
		PatientEmail: request.PatientEmail,
		Medicine:     request.Medicine,
		Dosage:       request.Dosage,
		Instructions: request.Instructions,
	}
	prescription.SetCreatedAtUpdatedAt()

	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}
	prescription.ID = prescriptionID

	return &responses.Prescription{
		ID:           prescription.ID,
		PatientEmail: prescription.PatientEmail,
		Medicine:     prescription.Medicine,
		Dosage:       prescription.Dosage,
		Instructions: prescription.Instructions,
	}, nil
}

func (uc *medicineUsecase) ListPrescriptions(ctx context.Context, facilityID string) ([]responses.Prescription, error) {
	prescriptions, err := uc.PrescriptionRepository.FindByFacilityID(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Prescription, 0, len(prescriptions))
	for _, p := range prescriptions {
		result = append(result, responses.Prescription{
			ID:           p.ID,
			PatientEmail: p.PatientEmail,
			Medicine:     p.Medicine,
			Dosage:       p.Dosage,
			Instructions: p.Instructions,
		})
	}
	return result, nil
}

func (uc *medicineUsecase) CreateDispense(ctx context.Context, facilityID string, request *requests.CreateDispense) (*responses.Dispense, error) {
	patient, err := uc.UserRepository.FindByEmail(ctx, request.PatientEmail)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	dispense := &models.Dispense{
		FacilityID:   facilityID,
		PatientEmail: request.PatientEmail,
		Medicine:     request.Medicine,
		Quantity:     request.Quantity,
		Notes:        request.Notes,
	}
	dispense.SetCreatedAtUpdatedAt()

	dispenseID, err := uc.DispenseRepository.CreateDispense(ctx, dispense)
	if err != nil {
		return nil, err
	}
	dispense.ID = dispenseID

	return &responses.Dispense{
		ID:           dispense.ID,
		PatientEmail: dispense.PatientEmail,
		Medicine:     dispense.Medicine,
		Quantity:     dispense.Quantity,
		Notes:        dispense.Notes,
	}, nil
}

func (uc *medicineUsecase) ListDispenses(ctx context.Context, facilityID string) ([]responses.Dispense, error) {
	dispenses, err := uc.DispenseRepository.FindByFacilityID(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Dispense, 0, len(dispenses))
	for _, d := range dispenses {
		result = append(result, responses.Dispense{
			ID:           d.ID,
			PatientEmail: d.PatientEmail,
			Medicine:     d.Medicine,
			Quantity:     d.Quantity,
			Notes:        d.Notes,
		})
	}
	return result, nil
}

func (uc *medicineUsecase) fetchOwned(ctx context.Context, patientID, medicineID string) (*models.Medicine, error) {
	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil || medicine.PatientID != patientID {
		return nil, exceptions.ErrDocumentNotFound(nil)
	}
	return medicine, nil
}

func buildMedicineResponse(medicine *models.Medicine) *responses.Medicine {
	return &responses.Medicine{
		ID:       medicine.ID,
		Name:     medicine.Name,
		Dosage:   medicine.Dosage,
		Schedule: medicine.Schedule,
		Notes:    medicine.Notes,
	}
}
