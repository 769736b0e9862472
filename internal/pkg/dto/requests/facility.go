package requests

type CreateFacility struct {
	Name         string   `json:"name" validate:"required,min=2,max=150"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"password"`
	Address      string   `json:"address" validate:"omitempty,max=300"`
	Capabilities []string `json:"capabilities" validate:"required,dive,oneof=prescribe dispense"`
}

type UpdateFacility struct {
	Name         string   `json:"name" validate:"omitempty,min=2,max=150"`
	Address      string   `json:"address" validate:"omitempty,max=300"`
	Capabilities []string `json:"capabilities" validate:"omitempty,dive,oneof=prescribe dispense"`
}
