package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tyrehub/tyrehub/internal/pkg/middleware"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/utils"
	"github.com/tyrehub/tyrehub/services/appointments"
)

// AppointmentHandler serves appointment booking endpoints
type AppointmentHandler struct {
	appointmentUC appointments.AppointmentUC
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentUC appointments.AppointmentUC) *AppointmentHandler {
	return &AppointmentHandler{appointmentUC: appointmentUC}
}

// RegisterRoutes registers the appointment endpoints
func (h *AppointmentHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/appointments")
	group.POST("", h.BookAppointment)
	group.GET("", h.ListAppointments)
	group.GET("/:id", h.GetAppointment)
	group.PUT("/:id/confirm", h.ConfirmAppointment)
	group.PUT("/:id/cancel", h.CancelAppointment)
}

// BookAppointment handles POST /api/appointments
func (h *AppointmentHandler) BookAppointment(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.CreateAppointmentInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	appointment, err := h.appointmentUC.BookAppointment(c.Request().Context(), principal, input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "appointment booked", appointment)
}

// ListAppointments handles GET /api/appointments
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.appointmentUC.ListAppointments(c.Request().Context(), principal)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "appointments retrieved", list)
}

// GetAppointment handles GET /api/appointments/:id
func (h *AppointmentHandler) GetAppointment(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid appointment id")
	}

	appointment, err := h.appointmentUC.GetAppointment(c.Request().Context(), principal, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "appointment retrieved", appointment)
}

// ConfirmAppointment handles PUT /api/appointments/:id/confirm
func (h *AppointmentHandler) ConfirmAppointment(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid appointment id")
	}

	appointment, err := h.appointmentUC.ConfirmAppointment(c.Request().Context(), principal, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "appointment confirmed", appointment)
}

// CancelAppointment handles PUT /api/appointments/:id/cancel
func (h *AppointmentHandler) CancelAppointment(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid appointment id")
	}

	appointment, err := h.appointmentUC.CancelAppointment(c.Request().Context(), principal, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "appointment cancelled", appointment)
}
