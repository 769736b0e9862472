package emergencytokens

import (
	"context"
	"yuktah-service/internal/pkg/dto/responses"
)

type EmergencyTokenUsecase interface {
	// Issue revokes every active token of the patient and mints a fresh one.
	Issue(ctx context.Context, patientID string) (*responses.EmergencyToken, error)
	// Revoke kills the patient's active tokens without a replacement.
	Revoke(ctx context.Context, patientID string) error
	// Resolve maps an active token to the narrowed public medical view.
	Resolve(ctx context.Context, token, remoteAddr string) (*responses.EmergencyView, error)
}
