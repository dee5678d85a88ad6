package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/model"
	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	CreateAll(ctx context.Context, accounts []*model.Account) error
	ListByUser(ctx context.Context, userID int64) ([]*model.Account, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*model.Account, error)
	GetDefaultForUser(ctx context.Context, userID int64) (*model.Account, error)
	TotalBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	ApplyMutation(ctx context.Context, accountID, userID int64, delta decimal.Decimal, entry *model.Transaction) (decimal.Decimal, error)
}

type accountRepository struct {
	db *Database
}

func NewAccountRepository(db *Database) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateAll(ctx context.Context, accounts []*model.Account) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO accounts (user_id, type, balance, number) VALUES ($1, $2, $3, $4)
              RETURNING id, created_at`
	for _, a := range accounts {
		if err := tx.QueryRowContext(ctx, query, a.UserID, a.Type, a.Balance, a.Number).
			Scan(&a.ID, &a.CreatedAt); err != nil {
			return fmt.Errorf("failed to create %s account: %w", a.Type, err)
		}
	}

	return tx.Commit()
}

func (r *accountRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Account, error) {
	query := `SELECT id, user_id, type, balance, number, created_at
              FROM accounts WHERE user_id = $1 ORDER BY created_at, id`
	rows, err := r.db.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Balance, &a.Number, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *accountRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*model.Account, error) {
	account := &model.Account{}
	query := `SELECT id, user_id, type, balance, number, created_at
              FROM accounts WHERE id = $1 AND user_id = $2`
	err := r.db.db.QueryRowContext(ctx, query, id, userID).
		Scan(&account.ID, &account.UserID, &account.Type, &account.Balance, &account.Number, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

func (r *accountRepository) GetDefaultForUser(ctx context.Context, userID int64) (*model.Account, error) {
	account := &model.Account{}
	query := `SELECT id, user_id, type, balance, number, created_at
              FROM accounts WHERE user_id = $1 AND type = $2
              ORDER BY created_at, id LIMIT 1`
	err := r.db.db.QueryRowContext(ctx, query, userID, model.AccountTypeSavings).
		Scan(&account.ID, &account.UserID, &account.Type, &account.Balance, &account.Number, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

func (r *accountRepository) TotalBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = $1`
	if err := r.db.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// ApplyMutation adjusts the account balance by delta and appends the ledger
// entry in a single database transaction. The balance update is conditional
// (balance + delta must stay non-negative), so concurrent mutations of the
// same account serialize on the row without a prior read.
func (r *accountRepository) ApplyMutation(ctx context.Context, accountID, userID int64, delta decimal.Decimal, entry *model.Transaction) (decimal.Decimal, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var newBalance decimal.Decimal
	update := `UPDATE accounts SET balance = balance + $1
               WHERE id = $2 AND user_id = $3 AND balance + $1 >= 0
               RETURNING balance`
	err = tx.QueryRowContext(ctx, update, delta, accountID, userID).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The caller resolved the account beforehand, so a miss here
			// means the conditional balance check failed.
			if exists, exErr := r.existsTx(ctx, tx, accountID, userID); exErr == nil && !exists {
				return decimal.Zero, ErrNotFound
			}
			return decimal.Zero, ErrInsufficientFunds
		}
		return decimal.Zero, fmt.Errorf("failed to update balance: %w", err)
	}

	entry.BalanceAfter = newBalance
	insert := `INSERT INTO transactions (reference, user_id, account_id, kind, amount, balance_after, description)
               VALUES ($1, $2, $3, $4, $5, $6, $7)
               RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, insert,
		entry.Reference, entry.UserID, entry.AccountID, entry.Kind,
		entry.Amount, entry.BalanceAfter, entry.Description).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to commit mutation: %w", err)
	}
	return newBalance, nil
}

func (r *accountRepository) existsTx(ctx context.Context, tx *sql.Tx, accountID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1 AND user_id = $2)`
	if err := tx.QueryRowContext(ctx, query, accountID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
