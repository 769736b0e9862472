package users

import (
	"context"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.UserProfile, error)
	// DeleteProfile removes the account and revokes any active emergency
	// token so a stale QR code cannot outlive its owner.
	DeleteProfile(ctx context.Context, userID string) error
}
