package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/internal/store"
	"github.com/MKhiriev/claude-switch/models"
)

type accountService struct {
	accounts store.AccountRepository
	logger   *logger.Logger
}

// NewAccountService wraps the account repository with input validation.
func NewAccountService(accounts store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		accounts: accounts,
		logger:   logger,
	}
}

func (s *accountService) Add(ctx context.Context, request models.CreateAccountRequest) (models.Account, error) {
	request.Name = strings.TrimSpace(request.Name)
	request.Token = strings.TrimSpace(request.Token)
	request.BaseURL = strings.TrimSpace(request.BaseURL)

	if request.Name == "" {
		return models.Account{}, ErrEmptyAccountName
	}
	if request.Token == "" {
		return models.Account{}, ErrEmptyAccountToken
	}
	if request.BaseURL == "" {
		return models.Account{}, ErrEmptyAccountBaseURL
	}

	account, err := s.accounts.Create(ctx, request)
	if err != nil {
		return models.Account{}, fmt.Errorf("add account: %w", err)
	}

	// token deliberately not logged
	s.logger.Info().
		Str("name", account.Name).
		Str("base_url", account.BaseURL).
		Msg("account stored")

	return account, nil
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) Get(ctx context.Context, id int64) (models.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return models.Account{}, fmt.Errorf("get account %d: %w", id, err)
	}
	return account, nil
}

func (s *accountService) Active(ctx context.Context) (models.Account, error) {
	account, err := s.accounts.GetActive(ctx)
	if err != nil {
		return models.Account{}, fmt.Errorf("get active account: %w", err)
	}
	return account, nil
}

func (s *accountService) Update(ctx context.Context, id int64, request models.UpdateAccountRequest) (models.Account, error) {
	if request.Token != nil && strings.TrimSpace(*request.Token) == "" {
		return models.Account{}, ErrEmptyAccountToken
	}

	account, err := s.accounts.Update(ctx, id, request)
	if err != nil {
		return models.Account{}, fmt.Errorf("update account %d: %w", id, err)
	}
	return account, nil
}

func (s *accountService) Remove(ctx context.Context, id int64) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove account %d: %w", id, err)
	}

	s.logger.Info().Int64("id", id).Msg("account removed")

	return nil
}
