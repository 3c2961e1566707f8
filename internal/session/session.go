package session

import (
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"

	"eventhub/internal/entity"
)

const (
	sessionName = "eventhub-session"
	tokenKey    = "token"
)

// TokenStore holds the bearer token between requests.
type TokenStore interface {
	Token(r *http.Request) string
	SetToken(w http.ResponseWriter, r *http.Request, token string) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type CookieTokenStore struct {
	store *sessions.CookieStore
}

func NewCookieTokenStore(secret string) *CookieTokenStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieTokenStore{store: store}
}

func (s *CookieTokenStore) Token(r *http.Request) string {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[tokenKey].(string)
	return token
}

func (s *CookieTokenStore) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	sess, _ := s.store.Get(r, sessionName)
	sess.Values[tokenKey] = token
	return sess.Save(r, w)
}

func (s *CookieTokenStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, sessionName)
	sess.Options.MaxAge = -1
	delete(sess.Values, tokenKey)
	return sess.Save(r, w)
}

// Decode parses the token payload without checking the signature.
// Verification is the API's job, the client only needs the claims.
func Decode(token string) (*entity.TokenClaims, error) {
	claims := &entity.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}

// Gate resolves the current session on each request. A token that no
// longer decodes is purged and treated as no session at all.
type Gate struct {
	Tokens TokenStore
}

func NewGate(tokens TokenStore) *Gate {
	return &Gate{Tokens: tokens}
}

func (g *Gate) Current(w http.ResponseWriter, r *http.Request) (*entity.TokenClaims, string, bool) {
	token := g.Tokens.Token(r)
	if token == "" {
		return nil, "", false
	}
	claims, err := Decode(token)
	if err != nil {
		g.Tokens.Clear(w, r)
		return nil, "", false
	}
	return claims, token, true
}
