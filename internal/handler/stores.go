package handler

// stores.go declares the narrow store contracts handlers depend on.
// The concrete repository types satisfy them; tests substitute
// func-field mocks.

import (
	"context"
	"time"

	"github.com/bloodlink/blood-donation-api/internal/model"
	"github.com/bloodlink/blood-donation-api/internal/repository"
)

// UserStore covers account creation and lookup.
type UserStore interface {
	Create(ctx context.Context, email, password, role string, cost int) (string, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
}

// TokenStore covers refresh token persistence and revocation.
type TokenStore interface {
	StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (string, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

// ProfileStore covers create-or-replace and lookup of role profiles.
type ProfileStore interface {
	SaveDonor(ctx context.Context, p *model.DonorProfile) error
	GetDonorByUser(ctx context.Context, userID string) (model.DonorProfile, error)
	SaveRecipient(ctx context.Context, p *model.RecipientProfile) error
	GetRecipientByUser(ctx context.Context, userID string) (model.RecipientProfile, error)
}

// RequestStore covers the blood request collection and its queries.
type RequestStore interface {
	Create(ctx context.Context, req *model.BloodRequest) error
	Accept(ctx context.Context, requestID string, donor repository.DonorSnapshot) (model.DonationAcceptance, error)
	GetByID(ctx context.Context, id string) (model.BloodRequest, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]model.BloodRequest, error)
	ListMatching(ctx context.Context, bloodType, city string) ([]model.BloodRequest, error)
}

// AcceptanceStore covers queries over recorded acceptances.
type AcceptanceStore interface {
	ListByRequest(ctx context.Context, requestID string) ([]model.DonationAcceptance, error)
}

var (
	_ UserStore       = (*repository.UserRepo)(nil)
	_ TokenStore      = (*repository.TokenRepo)(nil)
	_ ProfileStore    = (*repository.ProfileRepo)(nil)
	_ RequestStore    = (*repository.RequestRepo)(nil)
	_ AcceptanceStore = (*repository.AcceptanceRepo)(nil)
)
