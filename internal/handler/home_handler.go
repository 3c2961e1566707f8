package handler

import (
	"html/template"
	"net/http"

	"eventhub/internal/api"
	"eventhub/internal/entity"
	"eventhub/internal/session"
)

type HomeHandler struct {
	client *api.Client
	gate   *session.Gate
	tmpl   *template.Template
}

func NewHomeHandler(client *api.Client, gate *session.Gate, tmplDir string) *HomeHandler {
	return &HomeHandler{
		client: client,
		gate:   gate,
		tmpl:   parsePage(tmplDir, "home.html"),
	}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	claims, token, loggedIn := h.gate.Current(w, r)

	data := map[string]interface{}{
		"Title":     "EventHub",
		"LoggedIn":  loggedIn,
		"IsAdmin":   loggedIn && claims.Role == entity.RoleAdmin,
		"Forbidden": r.URL.Query().Get("error") == "forbidden",
		"Message":   r.URL.Query().Get("message"),
	}

	events, err := h.client.ListEvents(r.Context(), token, "", "")
	if err != nil {
		data["LoadError"] = "Gagal mengambil data event."
		h.tmpl.Execute(w, data)
		return
	}

	if len(events) > 3 {
		events = events[:3]
	}

	seen := map[string]bool{}
	var artists []string
	for _, event := range events {
		if !seen[event.Artist] {
			seen[event.Artist] = true
			artists = append(artists, event.Artist)
		}
	}

	data["Events"] = events
	data["Artists"] = artists
	h.tmpl.Execute(w, data)
}
