package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/utils"
	"github.com/tyrehub/tyrehub/services/auth"
)

// AuthHandler serves login and registration for both account kinds
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// RegisterRoutes registers the public authentication endpoints
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	userGroup := e.Group("/auth/user")
	userGroup.POST("/login", h.LoginCustomer)
	userGroup.POST("/register", h.RegisterCustomer)

	shopGroup := e.Group("/auth/tireshop")
	shopGroup.POST("/login", h.LoginShop)
	shopGroup.POST("/register", h.RegisterShop)
}

// LoginCustomer handles POST /auth/user/login
func (h *AuthHandler) LoginCustomer(c echo.Context) error {
	var req models.AuthRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.authUC.LoginCustomer(c.Request().Context(), req)
	if err != nil {
		return authErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "login successful", resp)
}

// RegisterCustomer handles POST /auth/user/register
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req models.RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.authUC.RegisterCustomer(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "registration successful", resp)
}

// LoginShop handles POST /auth/tireshop/login
func (h *AuthHandler) LoginShop(c echo.Context) error {
	var req models.AuthRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.authUC.LoginShop(c.Request().Context(), req)
	if err != nil {
		return authErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "login successful", resp)
}

// RegisterShop handles POST /auth/tireshop/register
func (h *AuthHandler) RegisterShop(c echo.Context) error {
	var req models.RegisterShopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.authUC.RegisterShop(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "registration successful", resp)
}

// authErrorResponse hides whether the email or the password was wrong.
func authErrorResponse(c echo.Context, err error) error {
	if errors.Is(err, apperrors.ErrUnknownIdentity) {
		return utils.UnauthorizedResponse(c, "invalid credentials")
	}
	return utils.DomainErrorResponse(c, err)
}
