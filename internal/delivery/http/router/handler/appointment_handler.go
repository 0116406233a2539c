package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vollmed/internal/delivery/http/response"
	"vollmed/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type bookAppointmentRequest struct {
	DoctorID    string    `json:"doctorId" validate:"required,uuid"`
	PatientID   string    `json:"patientId" validate:"required,uuid"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

type cancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type appointmentResponse struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctorId"`
	PatientID   string    `json:"patientId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

// AppointmentHandler holds dependencies for appointment-related handlers.
type AppointmentHandler struct {
	uc     usecase.AppointmentUsecase
	logger *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected by Fx.
func NewAppointmentHandler(uc usecase.AppointmentUsecase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, logger: logger}
}

// Book handles the appointment booking request.
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid doctor id")
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid patient id")
	}

	output, err := h.uc.Book(c.Request().Context(), usecase.BookAppointmentInput{
		DoctorID:    doctorID,
		PatientID:   patientID,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	body := appointmentResponse{
		ID:          output.Appointment.ID.String(),
		DoctorID:    output.Appointment.DoctorID.String(),
		PatientID:   output.Appointment.PatientID.String(),
		ScheduledAt: output.Appointment.ScheduledAt,
	}

	return response.Success(c, http.StatusCreated, body, "Appointment booked successfully")
}

// Cancel handles the appointment cancellation request. The appointment row
// is kept; only its cancellation fields change.
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment id")
	}

	var req cancelAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Cancel(c.Request().Context(), usecase.CancelAppointmentInput{
		ID:     id,
		Reason: req.Reason,
	}); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
