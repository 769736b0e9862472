package requests

// UpsertMedicalInfo overwrites the patient's whole snapshot; there is no
// field-level patching and no history.
type UpsertMedicalInfo struct {
	BloodGroup            string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	BloodGroupOther       string `json:"blood_group_other" validate:"omitempty,max=50"`
	Allergies             string `json:"allergies" validate:"omitempty,max=500"`
	AllergiesOther        string `json:"allergies_other" validate:"omitempty,max=500"`
	Medications           string `json:"medications" validate:"omitempty,max=500"`
	MedicationsOther      string `json:"medications_other" validate:"omitempty,max=500"`
	EmergencyContact      string `json:"emergency_contact" validate:"omitempty,max=200"`
	EmergencyContactOther string `json:"emergency_contact_other" validate:"omitempty,max=200"`
}
