package http

import (
	"net/http"

	"dental-care-server/internal/delivery/http/handler"
	"dental-care-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	appointmentHandler *handler.AppointmentHandler
	bookingHandler     *handler.BookingHandler
	userHandler        *handler.UserHandler
	doctorHandler      *handler.DoctorHandler
	paymentHandler     *handler.PaymentHandler
	authMiddleware     *middleware.AuthMiddleware
	roleMiddleware     *middleware.RoleMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	bookingHandler *handler.BookingHandler,
	userHandler *handler.UserHandler,
	doctorHandler *handler.DoctorHandler,
	paymentHandler *handler.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		appointmentHandler: appointmentHandler,
		bookingHandler:     bookingHandler,
		userHandler:        userHandler,
		doctorHandler:      doctorHandler,
		paymentHandler:     paymentHandler,
		authMiddleware:     authMiddleware,
		roleMiddleware:     roleMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Liveness
	r.router.HandleFunc("/", r.liveness).Methods(http.MethodGet)

	// Appointment options (public)
	r.router.HandleFunc("/appointmentsOptions", r.appointmentHandler.GetOptions).Methods(http.MethodGet)
	r.router.HandleFunc("/appointmentSpecialty", r.appointmentHandler.GetSpecialties).Methods(http.MethodGet)

	// Bookings: creation and single fetch are public, the per-identity
	// listing requires a bearer token
	r.router.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	r.router.Handle("/bookings", r.protect(r.bookingHandler.GetMyBookings)).Methods(http.MethodGet)
	r.router.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)

	// Users
	r.router.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	r.router.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	r.router.Handle("/users/admin/{id}", r.protectAdmin(r.userHandler.PromoteToAdmin)).Methods(http.MethodPut)
	r.router.HandleFunc("/users/admin/{email}", r.userHandler.GetAdminStatus).Methods(http.MethodGet)

	// Token issuance
	r.router.HandleFunc("/jwt", r.userHandler.IssueToken).Methods(http.MethodGet)

	// Doctor management (admin only)
	doctors := r.router.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Use(r.roleMiddleware.RequireAdmin)
	doctors.HandleFunc("", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	doctors.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Payments
	r.router.HandleFunc("/create-payment-intent", r.paymentHandler.CreatePaymentIntent).Methods(http.MethodPost)
	r.router.HandleFunc("/payments", r.paymentHandler.RecordPayment).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// protect wraps a handler with the authentication guard.
func (r *Router) protect(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

// protectAdmin wraps a handler with the authentication guard followed by
// the admin role check. Order matters: the role check reads the identity
// the authentication guard attaches.
func (r *Router) protectAdmin(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(r.roleMiddleware.RequireAdmin(h))
}

func (r *Router) liveness(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Dental care server is running"))
}
