package models

import "time"

// EmergencyToken grants unauthenticated read access to a patient's narrowed
// medical view. Invariant: at most one token with Active=true per patient,
// enforced by bulk-deactivating before inserting a replacement. Deactivation
// is terminal; a token is never reactivated.
type EmergencyToken struct {
	ID            string     `bson:"_id,omitempty"`
	Token         string     `bson:"token"`
	PatientID     string     `bson:"patientId"`
	Active        bool       `bson:"active"`
	CreatedAt     time.Time  `bson:"createdAt"`
	DeactivatedAt *time.Time `bson:"deactivatedAt,omitempty"`
}
