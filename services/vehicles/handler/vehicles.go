package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tyrehub/tyrehub/internal/pkg/middleware"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/utils"
	"github.com/tyrehub/tyrehub/services/vehicles"
)

// VehicleHandler serves customer vehicle endpoints
type VehicleHandler struct {
	vehicleUC vehicles.VehicleUC
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleUC vehicles.VehicleUC) *VehicleHandler {
	return &VehicleHandler{vehicleUC: vehicleUC}
}

// RegisterRoutes registers the vehicle endpoints
func (h *VehicleHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/vehicles")
	group.POST("", h.AddVehicle)
	group.GET("", h.ListVehicles)
	group.PUT("/:id", h.UpdateVehicle)
	group.DELETE("/:id", h.RemoveVehicle)
}

// AddVehicle handles POST /api/vehicles
func (h *VehicleHandler) AddVehicle(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var vehicle models.UserVehicle
	if err := c.Bind(&vehicle); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.vehicleUC.AddVehicle(c.Request().Context(), principal, vehicle)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "vehicle added", created)
}

// ListVehicles handles GET /api/vehicles
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.vehicleUC.ListVehicles(c.Request().Context(), principal)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "vehicles retrieved", list)
}

// UpdateVehicle handles PUT /api/vehicles/:id
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid vehicle id")
	}

	var vehicle models.UserVehicle
	if err := c.Bind(&vehicle); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	vehicle.ID = id

	updated, err := h.vehicleUC.UpdateVehicle(c.Request().Context(), principal, vehicle)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "vehicle updated", updated)
}

// RemoveVehicle handles DELETE /api/vehicles/:id
func (h *VehicleHandler) RemoveVehicle(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid vehicle id")
	}

	if err := h.vehicleUC.RemoveVehicle(c.Request().Context(), principal, id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "vehicle removed", nil)
}
