package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"eventhub/internal/api"
	"eventhub/internal/entity"
	"eventhub/internal/middleware"
	"eventhub/internal/session"
)

type EventsHandler struct {
	client     *api.Client
	gate       *session.Gate
	tmplList   *template.Template
	tmplDetail *template.Template
}

func NewEventsHandler(client *api.Client, gate *session.Gate, tmplDir string) *EventsHandler {
	return &EventsHandler{
		client:     client,
		gate:       gate,
		tmplList:   parsePage(tmplDir, "events.html"),
		tmplDetail: parsePage(tmplDir, "event_detail.html"),
	}
}

func (h *EventsHandler) EventsPage(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r.Context())
	token := middleware.TokenFrom(r.Context())

	name := r.URL.Query().Get("name")
	categoryID := r.URL.Query().Get("categoryId")

	data := map[string]interface{}{
		"Title":      "Daftar Event",
		"LoggedIn":   true,
		"IsAdmin":    claims.Role == entity.RoleAdmin,
		"Message":    r.URL.Query().Get("message"),
		"Name":       name,
		"CategoryID": categoryID,
	}

	events, err := h.client.ListEvents(r.Context(), token, name, categoryID)
	if err != nil {
		data["LoadError"] = "Gagal mengambil data event. Mohon coba lagi."
		h.tmplList.Execute(w, data)
		return
	}

	// filter control only, the list still renders without it
	categories, err := h.client.ListCategories(r.Context(), token)
	if err != nil {
		categories = nil
	}

	data["Events"] = events
	data["Categories"] = categories
	h.tmplList.Execute(w, data)
}

func (h *EventsHandler) EventDetailPage(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r.Context())
	token := middleware.TokenFrom(r.Context())
	id := mux.Vars(r)["id"]

	event, err := h.client.GetEvent(r.Context(), token, id)
	if err != nil {
		data := map[string]interface{}{
			"Title":     "Detail Event",
			"LoggedIn":  true,
			"IsAdmin":   claims.Role == entity.RoleAdmin,
			"LoadError": "Event tidak ditemukan atau gagal mengambil data.",
		}
		h.tmplDetail.Execute(w, data)
		return
	}

	h.renderDetail(w, event, claims, "", "")
}

// Book handles the booking form submit. The event is fetched once,
// before the booking call; on success the rendered availability is the
// fetched value minus the booked count, never a re-fetch.
func (h *EventsHandler) Book(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	claims, token, ok := h.gate.Current(w, r)
	if !ok {
		http.Redirect(w, r, "/login?redirect="+url.QueryEscape("/events/"+id), http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Gagal memproses form", http.StatusBadRequest)
		return
	}

	count, err := strconv.Atoi(r.FormValue("numberOfTickets"))
	if err != nil || count < 1 {
		count = 1
	}

	event, err := h.client.GetEvent(r.Context(), token, id)
	if err != nil {
		data := map[string]interface{}{
			"Title":     "Detail Event",
			"LoggedIn":  true,
			"IsAdmin":   claims.Role == entity.RoleAdmin,
			"LoadError": "Event tidak ditemukan atau gagal mengambil data.",
		}
		h.tmplDetail.Execute(w, data)
		return
	}

	if event.AvailableTickets == 0 || count > event.AvailableTickets {
		h.renderDetail(w, event, claims, "", "Jumlah tiket melebihi tiket yang tersedia.")
		return
	}

	if err := h.client.CreateBooking(r.Context(), token, event.ID, count); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			h.renderDetail(w, event, claims, "", apiErr.Message)
		} else {
			h.renderDetail(w, event, claims, "", "Terjadi kesalahan saat memesan. Mohon coba lagi.")
		}
		return
	}

	event.AvailableTickets -= count
	message := fmt.Sprintf("Booking berhasil! Anda memesan %d tiket.", count)
	h.renderDetail(w, event, claims, message, "")
}

func (h *EventsHandler) renderDetail(w http.ResponseWriter, event *entity.Event, claims *entity.TokenClaims, bookingMessage, bookingError string) {
	categoryName := "Tidak Ada"
	if event.Category != nil && event.Category.Name != "" {
		categoryName = event.Category.Name
	}

	data := map[string]interface{}{
		"Title":          event.Name,
		"LoggedIn":       true,
		"IsAdmin":        claims.Role == entity.RoleAdmin,
		"Event":          event,
		"CategoryName":   categoryName,
		"BookingMessage": bookingMessage,
		"BookingError":   bookingError,
	}
	h.tmplDetail.Execute(w, data)
}
