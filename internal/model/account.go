package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings AccountType = "SAVINGS"
	AccountTypeCurrent AccountType = "CURRENT"
	AccountTypeFixed   AccountType = "FIXED"
)

type Account struct {
	ID        int64
	UserID    int64
	Type      AccountType
	Balance   decimal.Decimal
	Number    string
	CreatedAt time.Time
}

// AccountView is the display-ready shape returned by the accounts endpoint.
type AccountView struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	Number      string          `json:"number"`
	Color       string          `json:"color"`
	OpeningDate time.Time       `json:"openingDate"`
	Branch      string          `json:"branch"`
}

// TypeMeta holds the fixed per-type display attributes.
type TypeMeta struct {
	Label  string
	Color  string
	Branch string
}

var typeMeta = map[AccountType]TypeMeta{
	AccountTypeSavings: {Label: "Savings Account", Color: "#10b981", Branch: "Main Branch"},
	AccountTypeCurrent: {Label: "Current Account", Color: "#3182ce", Branch: "Main Branch"},
	AccountTypeFixed:   {Label: "Fixed Account", Color: "#8b5cf6", Branch: "Investment Division"},
}

// MetaForType returns the display attributes for an account type. Unknown
// types fall back to the savings attributes.
func MetaForType(t AccountType) TypeMeta {
	if m, ok := typeMeta[t]; ok {
		return m
	}
	return typeMeta[AccountTypeSavings]
}

// View converts an account into its display-ready shape.
func (a *Account) View() *AccountView {
	meta := MetaForType(a.Type)
	return &AccountView{
		ID:          a.ID,
		Type:        strings.ToLower(string(a.Type)),
		Name:        meta.Label,
		Balance:     a.Balance,
		Number:      a.Number,
		Color:       meta.Color,
		OpeningDate: a.CreatedAt,
		Branch:      meta.Branch,
	}
}
