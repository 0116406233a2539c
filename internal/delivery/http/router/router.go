// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vollmed/internal/delivery/http/middleware"
	"vollmed/internal/delivery/http/router/handler"
	"vollmed/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	DoctorHandler      *handler.DoctorHandler
	PatientHandler     *handler.PatientHandler
	AppointmentHandler *handler.AppointmentHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		doctorHandler:      params.DoctorHandler,
		patientHandler:     params.PatientHandler,
		appointmentHandler: params.AppointmentHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Identity resolution runs on every route, public ones included; it
	// attaches the caller's account when a valid token is present and
	// otherwise lets the request through untouched. Access policy is
	// applied per group below.
	e.Use(r.authMiddleware.Authenticate)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes: credential exchange and account registration.
	e.POST("/login", r.authHandler.Login)
	e.POST("/accounts", r.authHandler.Register)

	requireAuth := r.authMiddleware.RequireAuthenticated
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	doctorGroup := e.Group("/doctors", requireAuth)
	{
		doctorGroup.POST("", r.doctorHandler.Register)
		doctorGroup.GET("", r.doctorHandler.List)
		doctorGroup.GET("/:id", r.doctorHandler.Get)
		doctorGroup.PUT("/:id", r.doctorHandler.Update)
		// Logical delete is restricted to administrators.
		doctorGroup.DELETE("/:id", r.doctorHandler.Deactivate, requireAdmin)
	}

	patientGroup := e.Group("/patients", requireAuth)
	{
		patientGroup.POST("", r.patientHandler.Register)
		patientGroup.GET("", r.patientHandler.List)
		patientGroup.GET("/:id", r.patientHandler.Get)
		patientGroup.PUT("/:id", r.patientHandler.Update)
		patientGroup.DELETE("/:id", r.patientHandler.Deactivate, requireAdmin)
	}

	appointmentGroup := e.Group("/appointments", requireAuth)
	{
		appointmentGroup.POST("", r.appointmentHandler.Book)
		appointmentGroup.DELETE("/:id", r.appointmentHandler.Cancel)
	}
}
