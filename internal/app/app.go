package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/controller"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/middlewareinternal"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/repository"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type App struct {
	cfg    *Config
	Router *chi.Mux
	db     *repository.Database
	Logger *zap.Logger
	Server *http.Server
}

func New(cfg *Config) (*App, error) {
	app := &App{
		cfg:    cfg,
		Router: chi.NewRouter(),
		Logger: zap.L(),
	}

	if err := app.initDB(); err != nil {
		return nil, err
	}

	app.initRouter()
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	a.Server = &http.Server{
		Addr:    a.cfg.RunAddress,
		Handler: a.Router,
	}

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	return a.shutdown()
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) initDB() error {
	dbConfig := repository.DatabaseConfig{
		DSN:            a.cfg.DatabaseURI,
		MigrationsPath: a.cfg.MigrationsPath,
	}

	db, err := repository.NewDatabase(dbConfig)
	if err != nil {
		a.Logger.Error("Database initialization failed",
			zap.String("dsn", a.cfg.MaskDBPassword()),
			zap.Error(err))
		return fmt.Errorf("database initialization failed: %w", err)
	}

	a.db = db
	a.Logger.Info("Database initialized",
		zap.String("migrations_path", a.cfg.MigrationsPath))

	return nil
}

func (a *App) initRouter() {
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.RealIP)
	a.Router.Use(middleware.Logger)
	a.Router.Use(middleware.Recoverer)
	a.Router.Use(middleware.Compress(5))

	// Repositories
	userRepo := repository.NewUserRepository(a.db)
	accountRepo := repository.NewAccountRepository(a.db)
	txnRepo := repository.NewTransactionRepository(a.db)

	// Services
	authService := service.NewAuthService(userRepo, a.cfg.JWTSecretKey, a.cfg.TokenTTL)
	accountService := service.NewAccountService(accountRepo, a.Logger)
	bankService := service.NewBankService(accountRepo, txnRepo, accountService, a.Logger)

	// Controllers
	authController := controller.NewAuthController(authService, a.Logger)
	accountController := controller.NewAccountController(accountService, a.Logger)
	bankController := controller.NewBankController(bankService, a.Logger)

	// Public routes
	a.Router.Post("/api/auth/register", authController.Register)
	a.Router.Post("/api/auth/login", authController.Login)

	// Protected routes
	a.Router.Group(func(r chi.Router) {
		r.Use(middlewareinternal.JWTAuthMiddleware(authService))

		r.Get("/api/bank/accounts", accountController.GetAccounts)
		r.Get("/api/bank/balance", accountController.GetBalance)
		r.Post("/api/bank/deposit", bankController.Deposit)
		r.Post("/api/bank/withdraw", bankController.Withdraw)
		r.Get("/api/bank/history", bankController.GetHistory)
	})
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return a.Server.Shutdown(ctx)
}
