package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/model"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// maxMutationAmount bounds a single deposit or withdrawal.
var maxMutationAmount = decimal.New(1, 9)

const historyLimit = 50

// MutationResult reports the outcome of a deposit or withdrawal.
type MutationResult struct {
	Balance      decimal.Decimal
	TotalBalance decimal.Decimal
	Entry        *model.Transaction
}

type BankService interface {
	// Deposit adds amount to the selected account (accountID, or the
	// caller's default SAVINGS account when zero) and appends a ledger
	// entry. The balance write and the ledger append commit atomically.
	Deposit(ctx context.Context, userID, accountID int64, amount decimal.Decimal) (*MutationResult, error)
	// Withdraw subtracts amount from the selected account, failing with
	// ErrInsufficientFunds when the balance would go negative.
	Withdraw(ctx context.Context, userID, accountID int64, amount decimal.Decimal) (*MutationResult, error)
	// History returns the caller's most recent ledger entries, newest first.
	History(ctx context.Context, userID int64) ([]*model.Transaction, error)
}

type bankService struct {
	accountRepo repository.AccountRepository
	txnRepo     repository.TransactionRepository
	accounts    AccountService
	logger      *zap.Logger
}

func NewBankService(
	accountRepo repository.AccountRepository,
	txnRepo repository.TransactionRepository,
	accounts AccountService,
	logger *zap.Logger,
) BankService {
	return &bankService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		accounts:    accounts,
		logger:      logger,
	}
}

func (s *bankService) Deposit(ctx context.Context, userID, accountID int64, amount decimal.Decimal) (*MutationResult, error) {
	return s.mutate(ctx, userID, accountID, amount, model.TransactionDeposit)
}

func (s *bankService) Withdraw(ctx context.Context, userID, accountID int64, amount decimal.Decimal) (*MutationResult, error) {
	return s.mutate(ctx, userID, accountID, amount, model.TransactionWithdrawal)
}

func (s *bankService) History(ctx context.Context, userID int64) ([]*model.Transaction, error) {
	return s.txnRepo.ListRecentByUser(ctx, userID, historyLimit)
}

func (s *bankService) mutate(ctx context.Context, userID, accountID int64, amount decimal.Decimal, kind model.TransactionKind) (*MutationResult, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	account, err := s.resolveAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	delta := amount
	if kind == model.TransactionWithdrawal {
		delta = amount.Neg()
	}

	entry := &model.Transaction{
		Reference:   uuid.New(),
		UserID:      userID,
		AccountID:   account.ID,
		Kind:        kind,
		Amount:      amount,
		Description: describeMutation(kind, account.Type),
	}

	newBalance, err := s.accountRepo.ApplyMutation(ctx, account.ID, userID, delta, entry)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	total, err := s.accountRepo.TotalBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum balances: %w", err)
	}

	s.logger.Info("Balance mutation applied",
		zap.Int64("user_id", userID),
		zap.Int64("account_id", account.ID),
		zap.String("kind", string(kind)),
		zap.String("amount", amount.String()),
		zap.String("reference", entry.Reference.String()))

	return &MutationResult{
		Balance:      newBalance,
		TotalBalance: total,
		Entry:        entry,
	}, nil
}

func (s *bankService) resolveAccount(ctx context.Context, userID, accountID int64) (*model.Account, error) {
	if accountID != 0 {
		account, err := s.accountRepo.GetByIDForUser(ctx, accountID, userID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, ErrAccountNotFound
		}
		return account, nil
	}

	account, err := s.accounts.DefaultAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// validateAmount enforces a strict amount contract before any arithmetic:
// positive, at most two fractional digits, and within the single-mutation
// bound.
func validateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.Exponent() < -2 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(maxMutationAmount) {
		return ErrInvalidAmount
	}
	return nil
}

func describeMutation(kind model.TransactionKind, accountType model.AccountType) string {
	if kind == model.TransactionWithdrawal {
		return fmt.Sprintf("Withdrawal from %s Account", accountType)
	}
	return fmt.Sprintf("Deposit to %s Account", accountType)
}
