package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"eventhub/internal/api"
	"eventhub/internal/handler"
	"eventhub/internal/middleware"
	"eventhub/internal/session"
)

type Server struct {
	router *mux.Router
}

func New(client *api.Client, tokens session.TokenStore, tmplDir string) *Server {
	gate := session.NewGate(tokens)

	home := handler.NewHomeHandler(client, gate, tmplDir)
	login := handler.NewLoginHandler(client, tokens, gate, tmplDir)
	events := handler.NewEventsHandler(client, gate, tmplDir)
	dashboard := handler.NewDashboardHandler(client, tmplDir)
	admin := handler.NewAdminHandler(client, tokens, tmplDir)

	requireUser := middleware.RequireUser(gate)
	requireAdmin := middleware.RequireAdmin(gate)

	r := mux.NewRouter()
	r.HandleFunc("/", home.HomePage).Methods(http.MethodGet)
	r.HandleFunc("/login", login.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", login.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", login.Logout).Methods(http.MethodPost)

	r.Handle("/events", requireUser(http.HandlerFunc(events.EventsPage))).Methods(http.MethodGet)
	r.Handle("/events/{id}", requireUser(http.HandlerFunc(events.EventDetailPage))).Methods(http.MethodGet)
	// booking does its own session check so it can keep the return path
	r.HandleFunc("/events/{id}/book", events.Book).Methods(http.MethodPost)

	r.Handle("/dashboard", requireUser(http.HandlerFunc(dashboard.DashboardPage))).Methods(http.MethodGet)
	r.Handle("/dashboard/bookings/{id}/cancel", requireUser(http.HandlerFunc(dashboard.CancelBooking))).Methods(http.MethodPost)

	r.Handle("/admin/dashboard", requireAdmin(http.HandlerFunc(admin.DashboardPage))).Methods(http.MethodGet)
	r.Handle("/admin/dashboard/events", requireAdmin(http.HandlerFunc(admin.EventsPage))).Methods(http.MethodGet)
	// the form checks the token itself, a missing one is a form error
	r.HandleFunc("/admin/dashboard/events/save", admin.SaveEvent).Methods(http.MethodPost)
	r.Handle("/admin/dashboard/events/{id}/delete", requireAdmin(http.HandlerFunc(admin.DeleteEvent))).Methods(http.MethodPost)

	return &Server{router: r}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
