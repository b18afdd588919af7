package http

import (
	"net/http"

	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	appointmentHandler    *handler.AppointmentHandler
	userHandler           *handler.UserHandler
	doctorHandler         *handler.DoctorHandler
	patientHandler        *handler.PatientHandler
	doctorScheduleHandler *handler.DoctorScheduleHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	loggingMiddleware     *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	userHandler *handler.UserHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	doctorScheduleHandler *handler.DoctorScheduleHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		appointmentHandler:    appointmentHandler,
		userHandler:           userHandler,
		doctorHandler:         doctorHandler,
		patientHandler:        patientHandler,
		doctorScheduleHandler: doctorScheduleHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		loggingMiddleware:     loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Preflight requests are answered by the CORS middleware.
	r.router.Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public; register picks up an admin token when sent)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Handle("/register", r.authMiddleware.Optional(http.HandlerFunc(r.authHandler.Register))).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below needs a bearer token. Role guards wrap single
	// routes so paths shared across roles still resolve by method.
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	protected.Handle("/appointments/{id:[0-9]+}", guard(middleware.RequireFrontDesk, r.appointmentHandler.DeleteAppointment)).Methods(http.MethodDelete)

	// Directory
	protected.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id:[0-9]+}/schedules", r.doctorHandler.ListSchedules).Methods(http.MethodGet)
	protected.Handle("/patients", guard(middleware.RequireStaff, r.patientHandler.ListPatients)).Methods(http.MethodGet)

	// Schedule management (admin, or the doctor owning the schedule)
	protected.Handle("/schedules", guard(middleware.RequireAdminOrDoctor, r.doctorScheduleHandler.CreateSchedule)).Methods(http.MethodPost)
	protected.Handle("/schedules/{id:[0-9]+}", guard(middleware.RequireAdminOrDoctor, r.doctorScheduleHandler.UpdateSchedule)).Methods(http.MethodPut)
	protected.Handle("/schedules/{id:[0-9]+}", guard(middleware.RequireAdminOrDoctor, r.doctorScheduleHandler.DeleteSchedule)).Methods(http.MethodDelete)

	// User management (admin)
	protected.Handle("/users", guard(middleware.RequireAdmin, r.userHandler.ListUsers)).Methods(http.MethodGet)
	protected.Handle("/users/{id:[0-9]+}", guard(middleware.RequireAdmin, r.userHandler.GetUser)).Methods(http.MethodGet)
	protected.Handle("/users/{id:[0-9]+}", guard(middleware.RequireAdmin, r.userHandler.UpdateUser)).Methods(http.MethodPut)
	protected.Handle("/users/{id:[0-9]+}", guard(middleware.RequireAdmin, r.userHandler.DeleteUser)).Methods(http.MethodDelete)

	// Audit trail (admin)
	protected.Handle("/audit-logs", guard(middleware.RequireAdmin, r.auditLogHandler.ListAuditLogs)).Methods(http.MethodGet)
	protected.Handle("/audit-logs/{id:[0-9]+}", guard(middleware.RequireAdmin, r.auditLogHandler.GetAuditLog)).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Recover)
	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func guard(mw func(http.Handler) http.Handler, h http.HandlerFunc) http.Handler {
	return mw(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
