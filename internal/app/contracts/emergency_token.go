package contracts

import (
	"context"
	"errors"
	"yuktah-service/internal/app/models"
)

// ErrActiveTokenExists reports that inserting a new active token lost a race
// with a concurrent Issue: the storage layer's uniqueness guarantee on active
// tokens rejected the insert. Callers re-run the rotation.
var ErrActiveTokenExists = errors.New("patient already has an active emergency token")

type EmergencyTokenRepository interface {
	// FindActiveByPatientID returns the patient's currently active tokens.
	// Used only for cache purging; the one-active invariant is enforced by
	// the unique index on active tokens together with the Issue retry.
	FindActiveByPatientID(ctx context.Context, patientID string) ([]models.EmergencyToken, error)
	// DeactivateAllByPatientID flips every active token of the patient to
	// inactive in one atomic UpdateMany, never a read-then-write loop.
	DeactivateAllByPatientID(ctx context.Context, patientID string) (deactivated int64, err error)
	// CreateToken inserts the token, returning ErrActiveTokenExists when the
	// storage layer rejects a second concurrent active token.
	CreateToken(ctx context.Context, token *models.EmergencyToken) error
	// FindActiveByToken resolves an active token or returns nil without
	// distinguishing "never issued" from "revoked".
	FindActiveByToken(ctx context.Context, token string) (*models.EmergencyToken, error)
}
