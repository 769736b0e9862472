package models

type LabReport struct {
	ID          string `bson:"_id,omitempty"`
	PatientID   string `bson:"patientId"`
	Title       string `bson:"title"`
	ObjectName  string `bson:"objectName"`
	ContentType string `bson:"contentType"`
	SizeInBytes int64  `bson:"sizeInBytes"`
	Summary     string `bson:"summary,omitempty"`
	TimeModel   `bson:",inline"`
}
