package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tyrehub/tyrehub/internal/pkg/middleware"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/utils"
	"github.com/tyrehub/tyrehub/services/emergency"
)

// EmergencyHandler serves help request endpoints
type EmergencyHandler struct {
	emergencyUC emergency.EmergencyUC
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(emergencyUC emergency.EmergencyUC) *EmergencyHandler {
	return &EmergencyHandler{emergencyUC: emergencyUC}
}

// RegisterRoutes registers the help request endpoints
func (h *EmergencyHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/requests")
	group.POST("", h.CreateRequest)
	group.GET("", h.ListRequests)
	group.GET("/pending", h.ListPendingRequests)
	group.GET("/nearby", h.NearbyRequests)
	group.GET("/:id", h.GetRequest)
	group.PUT("/:id/accept", h.AcceptRequest)
	group.PUT("/:id/complete", h.CompleteRequest)
}

// CreateRequest handles POST /api/requests
func (h *EmergencyHandler) CreateRequest(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.CreateHelpRequestInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	request, err := h.emergencyUC.CreateRequest(c.Request().Context(), principal, input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "help request created", request)
}

// ListRequests handles GET /api/requests
func (h *EmergencyHandler) ListRequests(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	requests, err := h.emergencyUC.ListRequests(c.Request().Context(), principal)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "help requests retrieved", requests)
}

// ListPendingRequests handles GET /api/requests/pending
func (h *EmergencyHandler) ListPendingRequests(c echo.Context) error {
	requests, err := h.emergencyUC.ListPendingRequests(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "pending help requests retrieved", requests)
}

// NearbyRequests handles GET /api/requests/nearby
func (h *EmergencyHandler) NearbyRequests(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	requests, err := h.emergencyUC.NearbyRequests(c.Request().Context(), principal)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "nearby help requests retrieved", requests)
}

// GetRequest handles GET /api/requests/:id
func (h *EmergencyHandler) GetRequest(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid request id")
	}

	request, err := h.emergencyUC.GetRequest(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "help request retrieved", request)
}

// AcceptRequest handles PUT /api/requests/:id/accept
func (h *EmergencyHandler) AcceptRequest(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid request id")
	}

	request, err := h.emergencyUC.AcceptRequest(c.Request().Context(), principal, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "help request accepted", request)
}

// CompleteRequest handles PUT /api/requests/:id/complete
func (h *EmergencyHandler) CompleteRequest(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid request id")
	}

	request, err := h.emergencyUC.CompleteRequest(c.Request().Context(), principal, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "help request completed", request)
}
