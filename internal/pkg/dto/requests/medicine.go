package requests

type CreateMedicine struct {
	Name     string `json:"name" validate:"required,min=1,max=150"`
	Dosage   string `json:"dosage" validate:"omitempty,max=100"`
	Schedule string `json:"schedule" validate:"omitempty,max=200"`
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateMedicine struct {
	Name     string `json:"name" validate:"omitempty,min=1,max=150"`
	Dosage   string `json:"dosage" validate:"omitempty,max=100"`
	Schedule string `json:"schedule" validate:"omitempty,max=200"`
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}

type CreatePrescription struct {
	PatientEmail string `json:"patient_email" validate:"required,email"`
	Medicine     string `json:"medicine" validate:"required,min=1,max=150"`
	Dosage       string `json:"dosage" validate:"omitempty,max=100"`
	Instructions string `json:"instructions" validate:"omitempty,max=500"`
}

type CreateDispense struct {
	PatientEmail string `json:"patient_email" validate:"required,email"`
	Medicine     string `json:"medicine" validate:"required,min=1,max=150"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Notes        string `json:"notes" validate:"omitempty,max=500"`
}
