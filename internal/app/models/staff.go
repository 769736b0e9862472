package models

type Staff struct {
	ID         string `bson:"_id,omitempty"`
	FacilityID string `bson:"facilityId"`
	Name       string `bson:"name"`
	Position   string `bson:"position"`
	Email      string `bson:"email,omitempty"`
	Phone      string `bson:"phone,omitempty"`
	TimeModel  `bson:",inline"`
}
