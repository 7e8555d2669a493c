package http

import (
	"net/http"

	"pms-backend/internal/delivery/http/handler"
	"pms-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	scheduleHandler      *handler.ScheduleHandler
	absenceHandler       *handler.AbsenceHandler
	availabilityHandler  *handler.AvailabilityHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	scheduleHandler *handler.ScheduleHandler,
	absenceHandler *handler.AbsenceHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		scheduleHandler:      scheduleHandler,
		absenceHandler:       absenceHandler,
		availabilityHandler:  availabilityHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor directory and availability (patients browse and book)
	patient := api.PathPrefix("").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	patient.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	patient.HandleFunc("/doctors/{id}/availability/days", r.availabilityHandler.GetAvailableDays).Methods(http.MethodGet)
	patient.HandleFunc("/doctors/{id}/availability/slots", r.availabilityHandler.GetTimeSlots).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.ListMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)
	patient.HandleFunc("/me/medical-records", r.medicalRecordHandler.ListMyRecords).Methods(http.MethodGet)

	// Doctor self-service: schedule, absences, agenda, patient files
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/me/schedules", r.scheduleHandler.CreateSchedule).Methods(http.MethodPost)
	doctor.HandleFunc("/me/schedules", r.scheduleHandler.ListSchedules).Methods(http.MethodGet)
	doctor.HandleFunc("/me/schedules/{id}", r.scheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	doctor.HandleFunc("/me/schedules/{id}", r.scheduleHandler.DeleteSchedule).Methods(http.MethodDelete)
	doctor.HandleFunc("/me/absences", r.absenceHandler.CreateAbsence).Methods(http.MethodPost)
	doctor.HandleFunc("/me/absences", r.absenceHandler.ListAbsences).Methods(http.MethodGet)
	doctor.HandleFunc("/me/absences/{id}", r.absenceHandler.DeleteAbsence).Methods(http.MethodDelete)
	doctor.HandleFunc("/me/appointments", r.appointmentHandler.ListDoctorAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	doctor.HandleFunc("/patients/{id}/medical-records", r.medicalRecordHandler.CreateRecord).Methods(http.MethodPost)
	doctor.HandleFunc("/patients/{id}/medical-records", r.medicalRecordHandler.ListPatientRecords).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeactivateDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
