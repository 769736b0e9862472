package responses

type Medicine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Dosage   string `json:"dosage,omitempty"`
	Schedule string `json:"schedule,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type Prescription struct {
	ID           string `json:"id"`
	PatientEmail string `json:"patient_email"`
	Medicine     string `json:"medicine"`
	Dosage       string `json:"dosage,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type Dispense struct {
	ID           string `json:"id"`
	PatientEmail string `json:"patient_email"`
	Medicine     string `json:"medicine"`
	Quantity     int    `json:"quantity"`
	Notes        string `json:"notes,omitempty"`
}
