package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/middlewareinternal"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/model"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/service"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BankController struct {
	bankService service.BankService
	logger      *zap.Logger
}

func NewBankController(bankService service.BankService, logger *zap.Logger) *BankController {
	return &BankController{
		bankService: bankService,
		logger:      logger,
	}
}

type mutationRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	AccountID int64           `json:"accountId"`
}

type mutationResponse struct {
	Message      string          `json:"message"`
	Balance      decimal.Decimal `json:"balance"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

func (c *BankController) Deposit(w http.ResponseWriter, r *http.Request) {
	c.handleMutation(w, r, "Deposit successful", c.bankService.Deposit)
}

func (c *BankController) Withdraw(w http.ResponseWriter, r *http.Request) {
	c.handleMutation(w, r, "Withdrawal successful", c.bankService.Withdraw)
}

func (c *BankController) handleMutation(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	op func(ctx context.Context, userID, accountID int64, amount decimal.Decimal) (*service.MutationResult, error),
) {
	userID, ok := middlewareinternal.GetUserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request mutationRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		errorJSON(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := op(r.Context(), userID, request.AccountID, request.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			errorJSON(w, r, http.StatusBadRequest, "Invalid amount")
		case errors.Is(err, service.ErrAccountNotFound):
			errorJSON(w, r, http.StatusNotFound, "Account not found")
		case errors.Is(err, service.ErrInsufficientFunds):
			errorJSON(w, r, http.StatusBadRequest, "Insufficient funds")
		default:
			c.logger.Error("Balance mutation failed",
				zap.Int64("user_id", userID),
				zap.Int64("account_id", request.AccountID),
				zap.Error(err))
			errorJSON(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	render.JSON(w, r, mutationResponse{
		Message:      message,
		Balance:      result.Balance,
		TotalBalance: result.TotalBalance,
	})
}

func (c *BankController) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareinternal.GetUserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := c.bankService.History(r.Context(), userID)
	if err != nil {
		c.logger.Error("Failed to load history", zap.Int64("user_id", userID), zap.Error(err))
		errorJSON(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	if transactions == nil {
		transactions = []*model.Transaction{}
	}
	render.JSON(w, r, transactions)
}
