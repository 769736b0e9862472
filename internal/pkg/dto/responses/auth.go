package responses

type Signup struct {
	UserID string `json:"user_id"`
}

type Login struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type Me struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities,omitempty"`
}
