package responses

type EmergencyToken struct {
	Token     string `json:"token"`
	CreatedAt string `json:"created_at"`
}

// EmergencyView is the deliberately narrowed public view served to
// unauthenticated first responders. Nothing beyond these five fields may ever
// be exposed here: no email, no credentials, no internal identifiers.
type EmergencyView struct {
	UserName         string `json:"userName"`
	BloodGroup       string `json:"bloodGroup"`
	Allergies        string `json:"allergies"`
	Medications      string `json:"medications"`
	EmergencyContact string `json:"emergencyContact"`
}
