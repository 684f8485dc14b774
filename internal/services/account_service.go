package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"tabi/internal/models/db_models"
	"tabi/internal/models/request_models"
	"tabi/internal/models/response_models"
	"tabi/internal/repositories"
	mem "tabi/pkg/memcache"
	"tabi/pkg/utils"
)

const minPasswordLength = 6

var errWeakPassword = utils.NewValidationError(utils.ErrWeakPassword, "パスワードは6文字以上で入力してください")

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Logout(jti string, expiresAt time.Time)
	Me(ctx context.Context, userID string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	revoked     mem.RevokedTokenStore
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	revoked mem.RevokedTokenStore,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		logger:      logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	err = utils.ComparePasswords(account.PasswordHash, request.Password)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Email)
	if err != nil {
		a.logger.Error("Token generation failed", zap.Error(err))
		return nil, utils.ErrInvalidCredentials
	}

	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	a.logger.Debug("Login process finished", zap.Duration("took", time.Since(startTime)))

	return &response_models.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {

	if len([]rune(request.Password)) < minPasswordLength {
		return nil, errWeakPassword
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("Account created", zap.String("account_id", newAccount.ID.String()))
	return toAccountResponse(newAccount), nil
}

// Logout revokes the token id until the token's own expiry.
func (a *AccountService) Logout(jti string, expiresAt time.Time) {
	a.revoked.Revoke(jti, expiresAt)
}

func (a *AccountService) Me(ctx context.Context, userID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(account *db_models.Account) *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:          account.ID.String(),
		DisplayName: account.Name,
		Email:       account.Email,
		CreatedAt:   account.CreatedAt,
	}
}
