package repository

import (
	"context"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/model"
)

type TransactionRepository interface {
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*model.Transaction, error)
}

type transactionRepository struct {
	db *Database
}

func NewTransactionRepository(db *Database) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*model.Transaction, error) {
	query := `SELECT t.id, t.reference, t.user_id, t.account_id, t.kind, t.amount,
                     t.balance_after, t.description, t.created_at, a.type, a.number
              FROM transactions t
              JOIN accounts a ON a.id = t.account_id
              WHERE t.user_id = $1
              ORDER BY t.created_at DESC, t.id DESC
              LIMIT $2`
	rows, err := r.db.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.Reference, &t.UserID, &t.AccountID, &t.Kind, &t.Amount,
			&t.BalanceAfter, &t.Description, &t.CreatedAt, &t.AccountType, &t.AccountNumber); err != nil {
			return nil, err
		}
		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
