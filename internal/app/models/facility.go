package models

// Facility is a hospital or pharmacy account. Capabilities is a subset of
// {prescribe, dispense} and is distinct from the session role. A disabled
// facility must fail authentication even when its credential is still valid.
type Facility struct {
	ID           string   `bson:"_id,omitempty"`
	Email        string   `bson:"email"`
	Password     string   `bson:"password"`
	Name         string   `bson:"name"`
	Address      string   `bson:"address,omitempty"`
	Capabilities []string `bson:"capabilities"`
	Enabled      bool     `bson:"enabled"`
	TimeModel    `bson:",inline"`
}
