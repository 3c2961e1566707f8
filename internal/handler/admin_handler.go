package handler

import (
	"errors"
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

type AdminHandler struct {
	client        *api.Client
	tokens        session.TokenStore
	tmplDashboard *template.Template
	tmplEvents    *template.Template
}

func NewAdminHandler(client *api.Client, tokens session.TokenStore, tmplDir string) *AdminHandler {
	return &AdminHandler{
		client:        client,
		tokens:        tokens,
		tmplDashboard: parsePage(tmplDir, "admin_dashboard.html"),
		tmplEvents:    parsePage(tmplDir, "admin_events.html"),
	}
}

func (h *AdminHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFrom(r.Context())

	data := map[string]interface{}{
		"Title":    "Dashboard Admin",
		"LoggedIn": true,
		"IsAdmin":  true,
		"Message":  r.URL.Query().Get("message"),
	}

	bookings, err := h.client.AllBookings(r.Context(), token)
	if err != nil {
		data["LoadError"] = "Gagal mengambil data booking."
		h.tmplDashboard.Execute(w, data)
		return
	}

	data["Bookings"] = bookings
	h.tmplDashboard.Execute(w, data)
}

func (h *AdminHandler) EventsPage(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFrom(r.Context())

	data := map[string]interface{}{
		"Title":    "Manajemen Event",
		"LoggedIn": true,
		"IsAdmin":  true,
		"Message":  r.URL.Query().Get("message"),
	}

	events, err := h.client.ListEvents(r.Context(), token, "", "")
	if err != nil {
		data["LoadError"] = "Gagal mengambil data event."
		h.tmplEvents.Execute(w, data)
		return
	}

	form := map[string]string{}
	formVisible := r.URL.Query().Get("form") == "new"
	if editID := r.URL.Query().Get("edit"); editID != "" {
		for i := range events {
			if events[i].ID == editID {
				form = eventForm(&events[i])
				formVisible = true
				break
			}
		}
	}

	data["Events"] = events
	data["Categories"] = h.categories(r)
	data["FormVisible"] = formVisible
	data["Form"] = form
	h.tmplEvents.Execute(w, data)
}

// SaveEvent serves both create and edit, selected by the hidden id
// field. A missing token is a terminal form error here, not a login
// redirect.
func (h *AdminHandler) SaveEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Gagal memproses form", http.StatusBadRequest)
		return
	}

	form := map[string]string{
		"id":           r.FormValue("id"),
		"name":         r.FormValue("name"),
		"description":  r.FormValue("description"),
		"date":         r.FormValue("date"),
		"location":     r.FormValue("location"),
		"artist":       r.FormValue("artist"),
		"price":        r.FormValue("price"),
		"totalTickets": r.FormValue("totalTickets"),
		"imageUrl":     r.FormValue("imageUrl"),
		"categoryId":   r.FormValue("categoryId"),
	}

	token := h.tokens.Token(r)
	if token == "" {
		h.renderEventsForm(w, r, "", form, "Anda harus login untuk melanjutkan.")
		return
	}

	price, err := strconv.ParseFloat(form["price"], 64)
	if err != nil {
		h.renderEventsForm(w, r, token, form, "Harga dan total tiket harus berupa angka.")
		return
	}
	totalTickets, err := strconv.Atoi(form["totalTickets"])
	if err != nil {
		h.renderEventsForm(w, r, token, form, "Harga dan total tiket harus berupa angka.")
		return
	}

	input := entity.EventInput{
		Name:         form["name"],
		Description:  form["description"],
		Date:         form["date"],
		Location:     form["location"],
		Artist:       form["artist"],
		Price:        price,
		TotalTickets: totalTickets,
		ImageURL:     form["imageUrl"],
		CategoryID:   form["categoryId"],
	}

	var message string
	if form["id"] != "" {
		err = h.client.UpdateEvent(r.Context(), token, form["id"], input)
		message = "Event berhasil diperbarui!"
	} else {
		err = h.client.CreateEvent(r.Context(), token, input)
		message = "Event berhasil ditambahkan!"
	}

	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			h.renderEventsForm(w, r, token, form, apiErr.Message)
		} else {
			h.renderEventsForm(w, r, token, form, "Terjadi kesalahan saat menyimpan event.")
		}
		return
	}

	http.Redirect(w, r, "/admin/dashboard/events?message="+url.QueryEscape(message), http.StatusSeeOther)
}

// DeleteEvent follows the same confirmed-deletion protocol as booking
// cancellation: snapshot first, drop the row only after success.
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFrom(r.Context())
	id := mux.Vars(r)["id"]

	data := map[string]interface{}{
		"Title":    "Manajemen Event",
		"LoggedIn": true,
		"IsAdmin":  true,
		"Form":     map[string]string{},
	}

	events, err := h.client.ListEvents(r.Context(), token, "", "")
	if err != nil {
		data["LoadError"] = "Gagal mengambil data event."
		h.tmplEvents.Execute(w, data)
		return
	}

	if err := h.client.DeleteEvent(r.Context(), token, id); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			data["Error"] = apiErr.Message
		} else {
			data["Error"] = "Gagal menghapus event."
		}
		data["Events"] = events
		data["Categories"] = h.categories(r)
		h.tmplEvents.Execute(w, data)
		return
	}

	kept := make([]entity.Event, 0, len(events))
	for _, event := range events {
		if event.ID != id {
			kept = append(kept, event)
		}
	}

	data["Message"] = "Event berhasil dihapus!"
	data["Events"] = kept
	data["Categories"] = h.categories(r)
	h.tmplEvents.Execute(w, data)
}

// renderEventsForm re-renders the management page with the form open
// and the entered values intact.
func (h *AdminHandler) renderEventsForm(w http.ResponseWriter, r *http.Request, token string, form map[string]string, formError string) {
	data := map[string]interface{}{
		"Title":       "Manajemen Event",
		"LoggedIn":    true,
		"IsAdmin":     true,
		"FormVisible": true,
		"Form":        form,
		"FormError":   formError,
	}

	if token != "" {
		if events, err := h.client.ListEvents(r.Context(), token, "", ""); err == nil {
			data["Events"] = events
		}
		data["Categories"] = h.categories(r)
	}

	h.tmplEvents.Execute(w, data)
}

func (h *AdminHandler) categories(r *http.Request) []entity.Category {
	categories, err := h.client.ListCategories(r.Context(), h.tokens.Token(r))
	if err != nil {
		return nil
	}
	return categories
}

func eventForm(event *entity.Event) map[string]string {
	date := event.Date
	if len(date) > 16 {
		date = date[:16] // datetime-local wants 2006-01-02T15:04
	}
	return map[string]string{
		"id":           event.ID,
		"name":         event.Name,
		"description":  event.Description,
		"date":         date,
		"location":     event.Location,
		"artist":       event.Artist,
		"price":        strconv.FormatFloat(event.Price, 'f', -1, 64),
		"totalTickets": strconv.Itoa(event.TotalTickets),
		"imageUrl":     event.ImageURL,
		"categoryId":   event.CategoryID,
	}
}
