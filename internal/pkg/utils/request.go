package utils

import (
	"context"
	"yuktah-service/internal/pkg/constvars"
)

// Subject identity resolved by the authorization gate. Handlers read these
// instead of re-verifying the credential.

func SubjectIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(constvars.CONTEXT_SUBJECT_ID_KEY).(string)
	return id
}

func SubjectEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(constvars.CONTEXT_SUBJECT_EMAIL_KEY).(string)
	return email
}

func SubjectRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(constvars.CONTEXT_SUBJECT_ROLE_KEY).(string)
	return role
}

func SubjectCapabilitiesFromContext(ctx context.Context) []string {
	caps, _ := ctx.Value(constvars.CONTEXT_SUBJECT_CAPS_KEY).([]string)
	return caps
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return id
}
