package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov/linkcut/internal/mocks"
)

func TestNewCookieHandlerNilSecretary(t *testing.T) {
	_, err := NewCookieHandler(nil)
	assert.Error(t, err)
}

func TestCookieHandleAbsentCookie(t *testing.T) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockSecretary(ctrl)
	cookieHandler, _ := NewCookieHandler(s)
	router.Use(cookieHandler.CookieHandle)
	router.Get("/get", func(w http.ResponseWriter, r *http.Request) {
		_, ok := UserID(r.Context())
		assert.False(t, ok)
		w.Write([]byte("anonymous"))
	})
	requestCookie := &http.Cookie{
		Name:  "some-other-key",
		Value: "some-token",
		Path:  "/",
	}
	client := resty.New()
	res, err := client.R().SetCookie(requestCookie).Get(ts.URL + "/get")
	if err != nil {
		t.Fatalf(err.Error())
	}

	assert.Equal(t, 200, res.StatusCode())
	assert.Empty(t, res.Cookies())
}

func TestCookieHandleGoodCookie(t *testing.T) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockSecretary(ctrl)
	cookieHandler, _ := NewCookieHandler(s)
	router.Use(cookieHandler.CookieHandle)
	router.Get("/get", func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserID(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "some-expected-token-deciphered", userID)
		w.Write([]byte("authorized"))
	})
	requestCookie := &http.Cookie{
		Name:  UserCookieKey,
		Value: "some-expected-token",
		Path:  "/",
	}
	s.EXPECT().Decode("some-expected-token").Return("some-expected-token-deciphered", nil)
	client := resty.New()
	res, err := client.R().SetCookie(requestCookie).Get(ts.URL + "/get")
	if err != nil {
		t.Fatalf(err.Error())
	}

	assert.Equal(t, 200, res.StatusCode())
}

func TestCookieHandleBadCookie(t *testing.T) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockSecretary(ctrl)
	cookieHandler, _ := NewCookieHandler(s)
	router.Use(cookieHandler.CookieHandle)
	router.Get("/get", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("authorized"))
	})
	requestCookie := &http.Cookie{
		Name:  UserCookieKey,
		Value: "some-erroneous-token",
		Path:  "/",
	}
	s.EXPECT().Decode(gomock.Any()).Return("", errors.New("some-generic-error"))
	client := resty.New()
	res, err := client.R().SetCookie(requestCookie).Get(ts.URL + "/get")
	if err != nil {
		t.Fatalf(err.Error())
	}

	assert.Equal(t, 401, res.StatusCode())
}

func TestSetSession(t *testing.T) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockSecretary(ctrl)
	cookieHandler, _ := NewCookieHandler(s)
	router.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		cookieHandler.SetSession(w, "some-user-id")
		w.Write([]byte("authorized"))
	})
	s.EXPECT().Encode("some-user-id").Return("some-expected-token")
	client := resty.New()
	res, err := client.R().Get(ts.URL + "/login")
	if err != nil {
		t.Fatalf(err.Error())
	}

	assert.Equal(t, 200, res.StatusCode())
	var found *http.Cookie
	for _, cookie := range res.Cookies() {
		if cookie.Name == UserCookieKey {
			found = cookie
		}
	}
	if found == nil {
		t.Fatal("session cookie was not set")
	}
	assert.Equal(t, "some-expected-token", found.Value)
}
