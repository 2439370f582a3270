// Package middleware provides various middleware functionality.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/akarpov/linkcut/internal/service/secretary"
)

// UserCookieKey sets a cookie name to be used in user identification.
const UserCookieKey = "linkcut_session"

type contextKey int

const userIDContextKey contextKey = iota

// CookieHandler sets object structure.
type CookieHandler struct {
	sec secretary.Secretary
}

// NewCookieHandler initializes a new cookie handler.
func NewCookieHandler(sec secretary.Secretary) (*CookieHandler, error) {
	if sec == nil {
		return nil, errors.New("nil secretary was passed to cookie handler initializer")
	}
	return &CookieHandler{sec: sec}, nil
}

// CookieHandle resolves the session cookie into a user identity placed on the
// request context. An absent cookie passes through unauthenticated, a present but
// undecipherable one is rejected.
func (c *CookieHandler) CookieHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(UserCookieKey)
		if errors.Is(err, http.ErrNoCookie) {
			next.ServeHTTP(w, r)
			return
		}
		userID, err := c.sec.Decode(cookie.Value)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// SetSession writes a ciphered session cookie for userID to the response.
func (c *CookieHandler) SetSession(w http.ResponseWriter, userID string) {
	token := c.sec.Encode(userID)
	http.SetCookie(w, &http.Cookie{
		Name:  UserCookieKey,
		Value: token,
		Path:  "/",
	})
}

// WithUserID returns a context carrying the authenticated user identifier.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserID extracts the authenticated user identifier from the request context.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok
}
