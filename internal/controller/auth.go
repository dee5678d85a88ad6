package controller

import (
	"errors"
	"net/http"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/model"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/service"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type AuthController struct {
	authService service.AuthService
	logger      *zap.Logger
}

func NewAuthController(authService service.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := render.DecodeJSON(r.Body, &request); err != nil {
		c.logger.Debug("Invalid request format", zap.Error(err))
		errorJSON(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if request.Name == "" || request.Email == "" || request.Password == "" {
		errorJSON(w, r, http.StatusBadRequest, "All fields required")
		return
	}

	user, token, err := c.authService.Register(r.Context(), request.Name, request.Email, request.Password)
	if err != nil {
		c.logger.Warn("Registration failed",
			zap.String("email", request.Email),
			zap.Error(err))

		if errors.Is(err, service.ErrUserAlreadyExists) {
			errorJSON(w, r, http.StatusBadRequest, "User exists")
			return
		}
		errorJSON(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, authResponse{Token: token, User: user})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := render.DecodeJSON(r.Body, &request); err != nil {
		c.logger.Debug("Invalid request format", zap.Error(err))
		errorJSON(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, token, err := c.authService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		c.logger.Warn("Login failed",
			zap.String("email", request.Email),
			zap.Error(err))

		if errors.Is(err, service.ErrInvalidCredentials) {
			errorJSON(w, r, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		errorJSON(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	render.JSON(w, r, authResponse{Token: token, User: user})
}
