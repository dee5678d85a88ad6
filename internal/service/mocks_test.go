package service

import (
	"context"
	"sync"
	"time"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/model"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/repository"
	"github.com/shopspring/decimal"
)

type userRepoMock struct {
	mu     sync.Mutex
	users  []*model.User
	nextID int64
}

func (m *userRepoMock) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	stored := *user
	m.users = append(m.users, &stored)
	return nil
}

func (m *userRepoMock) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *userRepoMock) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

// accountRepoMock keeps accounts and ledger entries in memory and applies
// mutations with the same conditional semantics as the SQL implementation.
type accountRepoMock struct {
	mu       sync.Mutex
	accounts []*model.Account
	entries  []*model.Transaction
	nextID   int64
}

func (m *accountRepoMock) CreateAll(_ context.Context, accounts []*model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range accounts {
		m.nextID++
		a.ID = m.nextID
		a.CreatedAt = time.Now()
		stored := *a
		m.accounts = append(m.accounts, &stored)
	}
	return nil
}

func (m *accountRepoMock) ListByUser(_ context.Context, userID int64) ([]*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Account
	for _, a := range m.accounts {
		if a.UserID == userID {
			found := *a
			out = append(out, &found)
		}
	}
	return out, nil
}

func (m *accountRepoMock) GetByIDForUser(_ context.Context, id, userID int64) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.ID == id && a.UserID == userID {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func (m *accountRepoMock) GetDefaultForUser(_ context.Context, userID int64) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.UserID == userID && a.Type == model.AccountTypeSavings {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func (m *accountRepoMock) TotalBalance(_ context.Context, userID int64) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, a := range m.accounts {
		if a.UserID == userID {
			total = total.Add(a.Balance)
		}
	}
	return total, nil
}

func (m *accountRepoMock) ApplyMutation(_ context.Context, accountID, userID int64, delta decimal.Decimal, entry *model.Transaction) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.ID != accountID || a.UserID != userID {
			continue
		}
		newBalance := a.Balance.Add(delta)
		if newBalance.Sign() < 0 {
			return decimal.Zero, repository.ErrInsufficientFunds
		}
		a.Balance = newBalance
		entry.BalanceAfter = newBalance
		entry.CreatedAt = time.Now()
		entry.ID = int64(len(m.entries) + 1)
		stored := *entry
		m.entries = append(m.entries, &stored)
		return newBalance, nil
	}
	return decimal.Zero, repository.ErrNotFound
}

type txnRepoMock struct {
	listFunc func(ctx context.Context, userID int64, limit int) ([]*model.Transaction, error)
}

func (m *txnRepoMock) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*model.Transaction, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, limit)
	}
	return nil, nil
}
