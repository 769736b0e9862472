package auth

import (
	"context"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	// Signup creates a patient account. Facility accounts are provisioned by
	// an administrator, never self-registered.
	Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error)
	// Login authenticates against the user collection first, then the
	// facility collection, and mints a session token on success.
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	// Me returns the authenticated subject's own account summary.
	Me(ctx context.Context, subjectID, role string) (*responses.Me, error)
}
