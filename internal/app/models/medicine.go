package models

// Medicine is a patient-tracked medication entry.
type Medicine struct {
	ID        string `bson:"_id,omitempty"`
	PatientID string `bson:"patientId"`
	Name      string `bson:"name"`
	Dosage    string `bson:"dosage,omitempty"`
	Schedule  string `bson:"schedule,omitempty"`
	Notes     string `bson:"notes,omitempty"`
	TimeModel `bson:",inline"`
}

// Prescription is created by a facility holding the prescribe capability.
type Prescription struct {
	ID           string `bson:"_id,omitempty"`
	FacilityID   string `bson:"facilityId"`
	PatientEmail string `bson:"patientEmail"`
	Medicine     string `bson:"medicine"`
	Dosage       string `bson:"dosage,omitempty"`
	Instructions string `bson:"instructions,omitempty"`
	TimeModel    `bson:",inline"`
}

// Dispense is created by a facility holding the dispense capability.
type Dispense struct {
	ID           string `bson:"_id,omitempty"`
	FacilityID   string `bson:"facilityId"`
	PatientEmail string `bson:"patientEmail"`
	Medicine     string `bson:"medicine"`
	Quantity     int    `bson:"quantity"`
	Notes        string `bson:"notes,omitempty"`
	TimeModel    `bson:",inline"`
}
