// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"

	"github.com/akarpov/linkcut/internal/api/rest/middleware"
	"github.com/akarpov/linkcut/internal/api/rest/modeldto"
	"github.com/akarpov/linkcut/internal/config"
	"github.com/akarpov/linkcut/internal/service/directory"
	serviceErrors "github.com/akarpov/linkcut/internal/service/errors"
	"github.com/akarpov/linkcut/internal/service/registry"
	storageErrors "github.com/akarpov/linkcut/internal/storage/errors"
)

const handlerTimeout = 500 * time.Millisecond

// URLHandler defines data structure handling and provides support for adding new implementations.
type URLHandler struct {
	registry  registry.Processor
	directory directory.Processor
	cookie    *middleware.CookieHandler
	cfg       *config.Config
	log       zerolog.Logger
}

// InitURLHandler initializes a URLHandler object and sets its attributes.
func InitURLHandler(reg registry.Processor, dir directory.Processor, cookie *middleware.CookieHandler, cfg *config.Config, log zerolog.Logger) (*URLHandler, error) {
	if reg == nil || dir == nil || cookie == nil {
		return nil, fmt.Errorf("nil service was passed to URL handler initializer")
	}
	return &URLHandler{registry: reg, directory: dir, cookie: cookie, cfg: cfg, log: log}, nil
}

// HandleLogin exchanges an externally asserted identity for a session cookie,
// creating the user on first sight.
func (h *URLHandler) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var login modeldto.RequestLogin
		err = json.Unmarshal(b, &login)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if login.ExternalID == "" {
			http.Error(w, "empty external_id", http.StatusBadRequest)
			return
		}
		userID, err := h.directory.Authenticate(ctx, login.ExternalID, login.DisplayName)
		if err != nil {
			h.log.Error().Err(err).Msg("HandleLogin failed")
			h.writeError(w, err)
			return
		}
		profile, err := h.directory.GetUser(ctx, userID)
		if err != nil {
			h.log.Error().Err(err).Msg("HandleLogin failed")
			h.writeError(w, err)
			return
		}
		h.cookie.SetSession(w, userID)
		resBody, err := json.Marshal(modeldto.ResponseUser{UserID: profile.UserID, DisplayName: profile.DisplayName})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(resBody)
	}
}

// HandleGetUser provides the authenticated client with its own user data.
func (h *URLHandler) HandleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		profile, err := h.directory.GetUser(ctx, userID)
		if err != nil {
			h.writeError(w, err)
			return
		}
		resBody, err := json.Marshal(modeldto.ResponseUser{UserID: profile.UserID, DisplayName: profile.DisplayName})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(resBody)
	}
}

// HandleGetURL provides client with a redirect to the original URL accessed by its slug.
func (h *URLHandler) HandleGetURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		slug := chi.URLParam(r, "slug")
		URL, err := h.registry.Visit(ctx, slug)
		if err != nil {
			h.writeError(w, err)
			return
		}
		w.Header().Set("Location", URL)
		w.WriteHeader(http.StatusTemporaryRedirect)
	}
}

// HandlePostURL stores the original URL and provides the client with its short version as plain text.
func (h *URLHandler) HandlePostURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slug, err := h.registry.Shorten(ctx, userID, string(b))
		if err != nil {
			h.log.Error().Err(err).Msg("HandlePostURL failed")
			h.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(h.cfg.BaseURL + "/" + slug))
	}
}

// JSONHandlePostURL accepts JSON as {"url":"<some_url>"} and provides client with JSON as {"result":"<short_url>"}.
func (h *URLHandler) JSONHandlePostURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var post modeldto.RequestURL
		err = json.Unmarshal(b, &post)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slug, err := h.registry.Shorten(ctx, userID, post.URL)
		if err != nil {
			h.log.Error().Err(err).Msg("JSONHandlePostURL failed")
			h.writeError(w, err)
			return
		}
		resBody, err := json.Marshal(modeldto.ResponseURL{ShortURL: h.cfg.BaseURL + "/" + slug})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(resBody)
	}
}

// HandleGetURLsByUserID provides the authenticated client with all of its links.
func (h *URLHandler) HandleGetURLsByUserID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		links, err := h.registry.ListByUser(ctx, userID)
		if err != nil {
			h.log.Error().Err(err).Msg("HandleGetURLsByUserID failed")
			h.writeError(w, err)
			return
		}
		if len(links) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		resLinks := make([]modeldto.ResponseUserLink, 0, len(links))
		for _, link := range links {
			resLinks = append(resLinks, modeldto.ResponseUserLink{
				ShortURL:   h.cfg.BaseURL + "/" + link.Slug,
				URL:        link.URL,
				VisitCount: link.VisitCount,
			})
		}
		resBody, err := json.Marshal(resLinks)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(resBody)
	}
}

// HandleDeleteURL removes one of the authenticated client's links. Deleting a
// nonexistent or foreign link is indistinguishable from success.
func (h *URLHandler) HandleDeleteURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		slug := chi.URLParam(r, "slug")
		err := h.registry.Delete(ctx, userID, slug)
		if err != nil {
			h.log.Error().Err(err).Msg("HandleDeleteURL failed")
			h.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

// HandlePingDB handles PSQL DB pinging to check connection status.
func (h *URLHandler) HandlePingDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h.registry.PingDB()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// writeError maps service and storage errors to HTTP status codes. Malformed slugs
// surface as storage NotFound and therefore share the 404 with absent links.
func (h *URLHandler) writeError(w http.ResponseWriter, err error) {
	var notFoundError *storageErrors.NotFoundError
	var timeoutError *storageErrors.ContextTimeoutExceededError
	var incorrectURLError *serviceErrors.ServiceIncorrectInputURL
	switch {
	case errors.As(err, &notFoundError):
		w.WriteHeader(http.StatusNotFound)
	case errors.As(err, &timeoutError):
		w.WriteHeader(http.StatusGatewayTimeout)
	case errors.As(err, &incorrectURLError):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
