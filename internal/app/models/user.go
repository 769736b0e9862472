package models

// User is a patient or administrator account. Facility logins live in their
// own collection because they carry a capability set and an enabled flag.
type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Name      string `bson:"name"`
	Role      string `bson:"role"`
	Phone     string `bson:"phone,omitempty"`
	TimeModel `bson:",inline"`
}
