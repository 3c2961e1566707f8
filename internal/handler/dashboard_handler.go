package handler

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"eventhub/internal/api"
	"eventhub/internal/entity"
	"eventhub/internal/middleware"
)

type DashboardHandler struct {
	client *api.Client
	tmpl   *template.Template
}

func NewDashboardHandler(client *api.Client, tmplDir string) *DashboardHandler {
	return &DashboardHandler{
		client: client,
		tmpl:   parsePage(tmplDir, "dashboard.html"),
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r.Context())
	token := middleware.TokenFrom(r.Context())

	data := map[string]interface{}{
		"Title":            "Tiket Saya",
		"LoggedIn":         true,
		"IsAdmin":          claims.Role == entity.RoleAdmin,
		"Message":          r.URL.Query().Get("message"),
		"ShowNotification": r.URL.Query().Get("bookingSuccess") == "true",
	}

	bookings, err := h.client.MyBookings(r.Context(), token)
	if err != nil {
		data["LoadError"] = "Gagal mengambil data booking. Mohon coba lagi."
		h.tmpl.Execute(w, data)
		return
	}

	data["Bookings"] = bookings
	h.tmpl.Execute(w, data)
}

// CancelBooking deletes one booking. The list is snapshotted before the
// call and the row is dropped from it only after the API confirms.
func (h *DashboardHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r.Context())
	token := middleware.TokenFrom(r.Context())
	id := mux.Vars(r)["id"]

	data := map[string]interface{}{
		"Title":    "Tiket Saya",
		"LoggedIn": true,
		"IsAdmin":  claims.Role == entity.RoleAdmin,
	}

	bookings, err := h.client.MyBookings(r.Context(), token)
	if err != nil {
		data["LoadError"] = "Gagal mengambil data booking. Mohon coba lagi."
		h.tmpl.Execute(w, data)
		return
	}

	if err := h.client.CancelBooking(r.Context(), token, id); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			data["Error"] = apiErr.Message
		} else {
			data["Error"] = "Gagal membatalkan pemesanan."
		}
		data["Bookings"] = bookings
		h.tmpl.Execute(w, data)
		return
	}

	kept := make([]entity.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.ID != id {
			kept = append(kept, booking)
		}
	}

	data["Message"] = "Pemesanan berhasil dibatalkan."
	data["Bookings"] = kept
	h.tmpl.Execute(w, data)
}
