package handler

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/blood-donation-api/internal/model"
	"github.com/bloodlink/blood-donation-api/internal/repository"
)

// Func-field mocks for the store contracts.  Unset funcs return zero
// values so each test only wires what it exercises.

type mockUserStore struct {
	createFunc     func(ctx context.Context, email, password, role string, cost int) (string, error)
	getByEmailFunc func(ctx context.Context, email string) (model.User, error)
	getByIDFunc    func(ctx context.Context, id string) (model.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, email, password, role string, cost int) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, email, password, role, cost)
	}
	return "", nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return model.User{}, sql.ErrNoRows
}

func (m *mockUserStore) GetByID(ctx context.Context, id string) (model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return model.User{}, sql.ErrNoRows
}

type mockTokenStore struct {
	storeFunc    func(ctx context.Context, userID, tokenHash string, exp time.Time) error
	validateFunc func(ctx context.Context, tokenHash string) (string, error)
	revokeFunc   func(ctx context.Context, tokenHash string) error
	revokeAll    func(ctx context.Context, userID string) error
}

func (m *mockTokenStore) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
	if m.storeFunc != nil {
		return m.storeFunc(ctx, userID, tokenHash, exp)
	}
	return nil
}

func (m *mockTokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, tokenHash)
	}
	return "", sql.ErrNoRows
}

func (m *mockTokenStore) RevokeByHash(ctx context.Context, tokenHash string) error {
	if m.revokeFunc != nil {
		return m.revokeFunc(ctx, tokenHash)
	}
	return nil
}

func (m *mockTokenStore) RevokeAllForUser(ctx context.Context, userID string) error {
	if m.revokeAll != nil {
		return m.revokeAll(ctx, userID)
	}
	return nil
}

type mockProfileStore struct {
	saveDonorFunc     func(ctx context.Context, p *model.DonorProfile) error
	getDonorFunc      func(ctx context.Context, userID string) (model.DonorProfile, error)
	saveRecipientFunc func(ctx context.Context, p *model.RecipientProfile) error
	getRecipientFunc  func(ctx context.Context, userID string) (model.RecipientProfile, error)
}

func (m *mockProfileStore) SaveDonor(ctx context.Context, p *model.DonorProfile) error {
	if m.saveDonorFunc != nil {
		return m.saveDonorFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileStore) GetDonorByUser(ctx context.Context, userID string) (model.DonorProfile, error) {
	if m.getDonorFunc != nil {
		return m.getDonorFunc(ctx, userID)
	}
	return model.DonorProfile{}, sql.ErrNoRows
}

func (m *mockProfileStore) SaveRecipient(ctx context.Context, p *model.RecipientProfile) error {
	if m.saveRecipientFunc != nil {
		return m.saveRecipientFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileStore) GetRecipientByUser(ctx context.Context, userID string) (model.RecipientProfile, error) {
	if m.getRecipientFunc != nil {
		return m.getRecipientFunc(ctx, userID)
	}
	return model.RecipientProfile{}, sql.ErrNoRows
}

type mockRequestStore struct {
	createFunc          func(ctx context.Context, req *model.BloodRequest) error
	acceptFunc          func(ctx context.Context, requestID string, donor repository.DonorSnapshot) (model.DonationAcceptance, error)
	getByIDFunc         func(ctx context.Context, id string) (model.BloodRequest, error)
	listByRecipientFunc func(ctx context.Context, recipientID string) ([]model.BloodRequest, error)
	listMatchingFunc    func(ctx context.Context, bloodType, city string) ([]model.BloodRequest, error)
}

func (m *mockRequestStore) Create(ctx context.Context, req *model.BloodRequest) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestStore) Accept(ctx context.Context, requestID string, donor repository.DonorSnapshot) (model.DonationAcceptance, error) {
	if m.acceptFunc != nil {
		return m.acceptFunc(ctx, requestID, donor)
	}
	return model.DonationAcceptance{}, repository.ErrNotFound
}

func (m *mockRequestStore) GetByID(ctx context.Context, id string) (model.BloodRequest, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return model.BloodRequest{}, repository.ErrNotFound
}

func (m *mockRequestStore) ListByRecipient(ctx context.Context, recipientID string) ([]model.BloodRequest, error) {
	if m.listByRecipientFunc != nil {
		return m.listByRecipientFunc(ctx, recipientID)
	}
	return []model.BloodRequest{}, nil
}

func (m *mockRequestStore) ListMatching(ctx context.Context, bloodType, city string) ([]model.BloodRequest, error) {
	if m.listMatchingFunc != nil {
		return m.listMatchingFunc(ctx, bloodType, city)
	}
	return []model.BloodRequest{}, nil
}

type mockAcceptanceStore struct {
	listByRequestFunc func(ctx context.Context, requestID string) ([]model.DonationAcceptance, error)
}

func (m *mockAcceptanceStore) ListByRequest(ctx context.Context, requestID string) ([]model.DonationAcceptance, error) {
	if m.listByRequestFunc != nil {
		return m.listByRequestFunc(ctx, requestID)
	}
	return []model.DonationAcceptance{}, nil
}

var (
	_ UserStore       = (*mockUserStore)(nil)
	_ TokenStore      = (*mockTokenStore)(nil)
	_ ProfileStore    = (*mockProfileStore)(nil)
	_ RequestStore    = (*mockRequestStore)(nil)
	_ AcceptanceStore = (*mockAcceptanceStore)(nil)
)

// newJSONContext builds an echo context carrying a JSON body.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
