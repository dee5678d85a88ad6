package controller

import (
	"net/http"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/middlewareinternal"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/service"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AccountController struct {
	accountService service.AccountService
	logger         *zap.Logger
}

func NewAccountController(accountService service.AccountService, logger *zap.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		logger:         logger,
	}
}

func (c *AccountController) GetAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareinternal.GetUserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accounts, err := c.accountService.ListAccounts(r.Context(), userID)
	if err != nil {
		c.logger.Error("Failed to list accounts", zap.Int64("user_id", userID), zap.Error(err))
		errorJSON(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	render.JSON(w, r, accounts)
}

func (c *AccountController) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareinternal.GetUserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	total, err := c.accountService.TotalBalance(r.Context(), userID)
	if err != nil {
		c.logger.Error("Failed to get balance", zap.Int64("user_id", userID), zap.Error(err))
		errorJSON(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	render.JSON(w, r, map[string]decimal.Decimal{"balance": total})
}
