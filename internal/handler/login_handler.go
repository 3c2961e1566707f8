package handler

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"eventhub/internal/api"
	"eventhub/internal/session"
)

type LoginHandler struct {
	client *api.Client
	tokens session.TokenStore
	gate   *session.Gate
	tmpl   *template.Template
}

func NewLoginHandler(client *api.Client, tokens session.TokenStore, gate *session.Gate, tmplDir string) *LoginHandler {
	return &LoginHandler{
		client: client,
		tokens: tokens,
		gate:   gate,
		tmpl:   parsePage(tmplDir, "login.html"),
	}
}

func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.gate.Current(w, r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := map[string]interface{}{
		"Title":    "Login",
		"Error":    "",
		"Redirect": r.URL.Query().Get("redirect"),
		"Form":     map[string]string{},
	}
	h.tmpl.Execute(w, data)
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.LoginPage(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Gagal memproses form", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	redirect := r.FormValue("redirect")

	renderError := func(msg string) {
		data := map[string]interface{}{
			"Title":    "Login",
			"Error":    msg,
			"Redirect": redirect,
			"Form":     map[string]string{"email": email},
		}
		h.tmpl.Execute(w, data)
	}

	if email == "" || password == "" {
		renderError("Email dan password wajib diisi.")
		return
	}

	result, err := h.client.Login(r.Context(), email, password)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			renderError(apiErr.Message)
		} else {
			renderError("Terjadi kesalahan. Mohon coba lagi.")
		}
		return
	}

	if err := h.tokens.SetToken(w, r, result.AccessToken); err != nil {
		renderError("Gagal menyimpan sesi. Mohon coba lagi.")
		return
	}

	name := result.User.Name
	if name == "" {
		name = result.User.Email
	}

	target := redirect
	if target == "" || !strings.HasPrefix(target, "/") {
		target = "/"
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	welcome := url.QueryEscape("Login berhasil! Selamat datang, " + name)
	http.Redirect(w, r, target+sep+"message="+welcome, http.StatusSeeOther)
}

func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.tokens.Clear(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
