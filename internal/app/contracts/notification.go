package contracts

import "context"

// EmergencyAccessEvent is published when a first responder resolves a
// patient's emergency token, so the patient can be notified.
type EmergencyAccessEvent struct {
	PatientID  string `json:"patient_id"`
	Token      string `json:"token"`
	AccessedAt string `json:"accessed_at"`
	RemoteAddr string `json:"remote_addr,omitempty"`
}

type NotificationPublisher interface {
	PublishEmergencyAccess(ctx context.Context, event *EmergencyAccessEvent) error
}
