package constvars

const (
	ResponseUnknown = "unknown"

	// Auth messages
	SignupSuccess = "account created successfully"
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// User-related messages
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"
	ProfileDeleteSuccess = "profile deleted successfully"

	// Facility messages
	FacilityCreatedSuccess = "facility account created successfully"
	FacilityUpdatedSuccess = "facility account updated successfully"
	FacilityGetSuccess     = "get facility successfully"
	FacilityListSuccess    = "get facilities successfully"

	// Staff messages
	StaffCreatedSuccess = "staff record created successfully"
	StaffUpdatedSuccess = "staff record updated successfully"
	StaffDeletedSuccess = "staff record deleted successfully"
	StaffGetSuccess     = "get staff successfully"

	// Medicine messages
	MedicineCreatedSuccess     = "medicine created successfully"
	MedicineUpdatedSuccess     = "medicine updated successfully"
	MedicineDeletedSuccess     = "medicine deleted successfully"
	MedicineGetSuccess         = "get medicines successfully"
	PrescriptionCreatedSuccess = "prescription created successfully"
	DispenseRecordedSuccess    = "dispense recorded successfully"

	// Medical info messages
	MedicalInfoGetSuccess    = "get medical info successfully"
	MedicalInfoSavedSuccess  = "medical info saved successfully"
	EmergencyTokenIssued     = "emergency token issued successfully"
	EmergencyTokenRevoked    = "emergency token revoked successfully"
	EmergencyViewGetSuccess  = "get emergency information successfully"
	LabReportUploadedSuccess = "lab report uploaded successfully"
	LabReportDeletedSuccess  = "lab report deleted successfully"
	LabReportGetSuccess      = "get lab reports successfully"
	LabReportSummarySuccess  = "lab report summarized successfully"
)
