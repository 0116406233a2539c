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

type registerPatientRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty"`
	DocumentNumber string `json:"documentNumber" validate:"required"`
}

type updatePatientRequest struct {
	Name  string `json:"name" validate:"omitempty"`
	Phone string `json:"phone" validate:"omitempty"`
}

type patientResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	DocumentNumber string    `json:"documentNumber"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newPatientResponse(patient *entity.Patient) patientResponse {
	return patientResponse{
		ID:             patient.ID.String(),
		Name:           patient.Name,
		Email:          patient.Email,
		Phone:          patient.Phone,
		DocumentNumber: patient.DocumentNumber,
		Active:         patient.Active,
		CreatedAt:      patient.CreatedAt,
	}
}

// PatientHandler holds dependencies for patient-related handlers.
type PatientHandler struct {
	uc     usecase.PatientUsecase
	logger *slog.Logger
}

// NewPatientHandler is the constructor for PatientHandler, injected by Fx.
func NewPatientHandler(uc usecase.PatientUsecase, logger *slog.Logger) *PatientHandler {
	return &PatientHandler{uc: uc, logger: logger}
}

// Register handles the patient registration request.
func (h *PatientHandler) Register(c echo.Context) error {
	var req registerPatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterPatientInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DocumentNumber: req.DocumentNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPatientResponse(output.Patient), "Patient registered successfully")
}

// List handles the request for the active patient listing.
func (h *PatientHandler) List(c echo.Context) error {
	output, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	patients := make([]patientResponse, 0, len(output.Patients))
	for _, patient := range output.Patients {
		patients = append(patients, newPatientResponse(patient))
	}

	return response.Success(c, http.StatusOK, patients, "")
}

// Get handles the request for a single patient's detail.
func (h *PatientHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid patient id")
	}

	output, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPatientResponse(output.Patient), "")
}

// Update handles the request to change a patient's mutable fields.
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid patient id")
	}

	var req updatePatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), usecase.UpdatePatientInput{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPatientResponse(output.Patient), "Patient updated successfully")
}

// Deactivate handles the logical delete of a patient.
func (h *PatientHandler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid patient id")
	}

	if err := h.uc.Deactivate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
