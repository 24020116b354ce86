package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"userhub/internal/models/db_models"
	"userhub/internal/models/request_models"
	"userhub/internal/models/response_models"
	"userhub/internal/repositories"
	"userhub/pkg/utils"
)

// Identity is the authenticated caller resolved by the auth middleware.
type Identity struct {
	UserID string
	Email  string
}

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, requester Identity, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
	UpdatePreferences(ctx context.Context, accountID uuid.UUID, requester Identity, request request_models.UpdatePreferencesRequest) (*response_models.PreferencesUpdateResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	hasher      utils.PasswordHasher
	tokens      utils.TokenIssuer
}

func NewAccountService(accountRepo repositories.AccountRepository, hasher utils.PasswordHasher, tokens utils.TokenIssuer) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {

	_, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err == nil {
		return nil, utils.ErrEmailAlreadyExists
	}
	if !errors.Is(err, utils.ErrAccountNotFound) {
		return nil, err
	}

	hashedPassword, err := a.hasher.Hash(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	// A concurrent registration with the same email loses the race on the
	// unique constraint and surfaces here as ErrEmailAlreadyExists.
	if err := a.accountRepo.CreateWithDefaultPreferences(ctx, newAccount); err != nil {
		return nil, err
	}

	token, err := a.tokens.Issue(newAccount.ID, newAccount.Email)
	if err != nil {
		log.Printf("Token issuance failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Account: response_models.ToAccountResponse(newAccount),
		Token:   token,
	}, nil
}

// Login returns the same message for an unknown email and a wrong password
// so callers cannot probe which addresses have accounts.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, utils.ErrAccountNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.hasher.Verify(request.Password, account.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(account.ID, account.Email)
	if err != nil {
		log.Printf("Token issuance failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Account: response_models.ToAccountResponse(account),
		Token:   token,
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {

	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	response := response_models.ToAccountResponse(account)
	return &response, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, requester Identity, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {

	if requester.UserID != accountID.String() {
		return nil, utils.ErrProfileOwnership
	}

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.PushToken != nil {
		fields["push_token"] = *request.PushToken
	}
	if len(fields) == 0 {
		return nil, utils.ErrEmptyProfileUpdate
	}

	if err := a.accountRepo.UpdateAccountFields(ctx, accountID, fields); err != nil {
		return nil, err
	}

	return a.GetProfile(ctx, accountID)
}

func (a *AccountService) UpdatePreferences(ctx context.Context, accountID uuid.UUID, requester Identity, request request_models.UpdatePreferencesRequest) (*response_models.PreferencesUpdateResponse, error) {

	if requester.UserID != accountID.String() {
		return nil, utils.ErrPreferencesOwnership
	}

	fields := map[string]interface{}{}
	if request.Email != nil {
		fields["email"] = *request.Email
	}
	if request.Push != nil {
		fields["push"] = *request.Push
	}
	if request.Sms != nil {
		fields["sms"] = *request.Sms
	}
	if len(fields) == 0 {
		return nil, utils.ErrEmptyPreferencesUpdate
	}

	prefs, err := a.accountRepo.UpsertPreferences(ctx, accountID, fields)
	if err != nil {
		return nil, err
	}

	// The returned timestamp is the account row's, not the preferences
	// row's, so the account is re-read after the upsert.
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &response_models.PreferencesUpdateResponse{
		ID:                      account.ID.String(),
		NotificationPreferences: response_models.ToPreferencesResponse(prefs),
		UpdatedAt:               account.UpdatedAt,
	}, nil
}
