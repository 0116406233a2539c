package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vollmed/internal/delivery/http/response"
	"vollmed/internal/domain/entity"
	"vollmed/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerDoctorRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty"`
	DocumentNumber string `json:"documentNumber" validate:"required"`
	Specialty      string `json:"specialty" validate:"required,oneof=orthopedics cardiology general_medicine dermatology"`
}

type updateDoctorRequest struct {
	Name  string `json:"name" validate:"omitempty"`
	Phone string `json:"phone" validate:"omitempty"`
}

type doctorResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	DocumentNumber string    `json:"documentNumber"`
	Specialty      string    `json:"specialty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newDoctorResponse(doctor *entity.Doctor) doctorResponse {
	return doctorResponse{
		ID:             doctor.ID.String(),
		Name:           doctor.Name,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		DocumentNumber: doctor.DocumentNumber,
		Specialty:      doctor.Specialty.String(),
		Active:         doctor.Active,
		CreatedAt:      doctor.CreatedAt,
	}
}

// DoctorHandler holds dependencies for doctor-related handlers.
type DoctorHandler struct {
	uc     usecase.DoctorUsecase
	logger *slog.Logger
}

// NewDoctorHandler is the constructor for DoctorHandler, injected by Fx.
func NewDoctorHandler(uc usecase.DoctorUsecase, logger *slog.Logger) *DoctorHandler {
	return &DoctorHandler{uc: uc, logger: logger}
}

// Register handles the doctor registration request.
func (h *DoctorHandler) Register(c echo.Context) error {
	var req registerDoctorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid doctor input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterDoctorInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DocumentNumber: req.DocumentNumber,
		Specialty:      req.Specialty,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newDoctorResponse(output.Doctor), "Doctor registered successfully")
}

// List handles the request for the active doctor listing.
func (h *DoctorHandler) List(c echo.Context) error {
	output, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	doctors := make([]doctorResponse, 0, len(output.Doctors))
	for _, doctor := range output.Doctors {
		doctors = append(doctors, newDoctorResponse(doctor))
	}

	return response.Success(c, http.StatusOK, doctors, "")
}

// Get handles the request for a single doctor's detail.
func (h *DoctorHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid doctor id")
	}

	output, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDoctorResponse(output.Doctor), "")
}

// Update handles the request to change a doctor's mutable fields.
func (h *DoctorHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid doctor id")
	}

	var req updateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid doctor input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), usecase.UpdateDoctorInput{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDoctorResponse(output.Doctor), "Doctor updated successfully")
}

// Deactivate handles the logical delete of a doctor.
func (h *DoctorHandler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid doctor id")
	}

	if err := h.uc.Deactivate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
