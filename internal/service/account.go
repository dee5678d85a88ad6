package service

import (
	"context"
	"fmt"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/model"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/repository"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/util/accnum"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Starting balances for lazily provisioned default accounts.
var (
	defaultSavingsBalance = decimal.NewFromInt(1000)
	defaultCurrentBalance = decimal.NewFromInt(500)
)

type AccountService interface {
	// ListAccounts returns the caller's accounts in display-ready form,
	// provisioning the default pair when none exist yet.
	ListAccounts(ctx context.Context, userID int64) ([]*model.AccountView, error)
	// TotalBalance sums the balances of all the caller's accounts,
	// provisioning first when none exist yet.
	TotalBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	// DefaultAccount resolves the implicit account selector: the oldest
	// SAVINGS account, provisioning first when the caller has no accounts.
	DefaultAccount(ctx context.Context, userID int64) (*model.Account, error)
}

type accountService struct {
	accountRepo repository.AccountRepository
	logger      *zap.Logger
}

func NewAccountService(accountRepo repository.AccountRepository, logger *zap.Logger) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (s *accountService) ListAccounts(ctx context.Context, userID int64) ([]*model.AccountView, error) {
	accounts, err := s.ensureProvisioned(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*model.AccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, a.View())
	}
	return views, nil
}

func (s *accountService) TotalBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	if _, err := s.ensureProvisioned(ctx, userID); err != nil {
		return decimal.Zero, err
	}
	return s.accountRepo.TotalBalance(ctx, userID)
}

func (s *accountService) DefaultAccount(ctx context.Context, userID int64) (*model.Account, error) {
	account, err := s.accountRepo.GetDefaultForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	accounts, err := s.ensureProvisioned(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Type == model.AccountTypeSavings {
			return a, nil
		}
	}
	return nil, nil
}

// ensureProvisioned creates the default SAVINGS and CURRENT accounts for a
// user that has none, then returns the full account list.
func (s *accountService) ensureProvisioned(ctx context.Context, userID int64) ([]*model.Account, error) {
	accounts, err := s.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) > 0 {
		return accounts, nil
	}

	defaults := []*model.Account{
		{
			UserID:  userID,
			Type:    model.AccountTypeSavings,
			Balance: defaultSavingsBalance,
			Number:  accnum.Generate(string(model.AccountTypeSavings)),
		},
		{
			UserID:  userID,
			Type:    model.AccountTypeCurrent,
			Balance: defaultCurrentBalance,
			Number:  accnum.Generate(string(model.AccountTypeCurrent)),
		},
	}

	if err := s.accountRepo.CreateAll(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to provision default accounts: %w", err)
	}

	s.logger.Info("Provisioned default accounts",
		zap.Int64("user_id", userID),
		zap.String("savings_number", defaults[0].Number),
		zap.String("current_number", defaults[1].Number))

	return defaults, nil
}
