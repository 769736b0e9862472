package responses

type MedicalInfo struct {
	BloodGroup            string `json:"blood_group,omitempty"`
	BloodGroupOther       string `json:"blood_group_other,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	AllergiesOther        string `json:"allergies_other,omitempty"`
	Medications           string `json:"medications,omitempty"`
	MedicationsOther      string `json:"medications_other,omitempty"`
	EmergencyContact      string `json:"emergency_contact,omitempty"`
	EmergencyContactOther string `json:"emergency_contact_other,omitempty"`
}
