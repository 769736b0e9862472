package models

// MedicalInfo is the denormalized medical snapshot owned by exactly one
// patient. It is overwritten on update, never versioned. Each field carries a
// free-text "other" override that takes precedence over the picked value when
// set.
type MedicalInfo struct {
	ID                    string `bson:"_id,omitempty"`
	PatientID             string `bson:"patientId"`
	BloodGroup            string `bson:"bloodGroup,omitempty"`
	BloodGroupOther       string `bson:"bloodGroupOther,omitempty"`
	Allergies             string `bson:"allergies,omitempty"`
	AllergiesOther        string `bson:"allergiesOther,omitempty"`
	Medications           string `bson:"medications,omitempty"`
	MedicationsOther      string `bson:"medicationsOther,omitempty"`
	EmergencyContact      string `bson:"emergencyContact,omitempty"`
	EmergencyContactOther string `bson:"emergencyContactOther,omitempty"`
	TimeModel             `bson:",inline"`
}

// EffectiveBloodGroup and friends resolve the override precedence.
func (m *MedicalInfo) EffectiveBloodGroup() string {
	if m.BloodGroupOther != "" {
		return m.BloodGroupOther
	}
	return m.BloodGroup
}

func (m *MedicalInfo) EffectiveAllergies() string {
	if m.AllergiesOther != "" {
		return m.AllergiesOther
	}
	return m.Allergies
}

func (m *MedicalInfo) EffectiveMedications() string {
	if m.MedicationsOther != "" {
		return m.MedicationsOther
	}
	return m.Medications
}

func (m *MedicalInfo) EffectiveEmergencyContact() string {
	if m.EmergencyContactOther != "" {
		return m.EmergencyContactOther
	}
	return m.EmergencyContact
}
