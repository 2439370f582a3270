package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/akarpov/linkcut/internal/api/rest/middleware"
	"github.com/akarpov/linkcut/internal/api/rest/modeldto"
	"github.com/akarpov/linkcut/internal/config"
	directoryService "github.com/akarpov/linkcut/internal/service/directory"
	directoryV1 "github.com/akarpov/linkcut/internal/service/directory/v1"
	registryService "github.com/akarpov/linkcut/internal/service/registry"
	registryV1 "github.com/akarpov/linkcut/internal/service/registry/v1"
	secretaryV1 "github.com/akarpov/linkcut/internal/service/secretary/v1"
	slugV1 "github.com/akarpov/linkcut/internal/service/slug/v1"
	"github.com/akarpov/linkcut/internal/storage/inmemory"
)

type HandlersTestSuite struct {
	suite.Suite
	cfg       *config.Config
	storage   *inmemory.Storage
	registry  registryService.Processor
	directory directoryService.Processor
	secretary *secretaryV1.Secretary
	router    *chi.Mux
	ts        *httptest.Server
	ctx       context.Context
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		ServerAddress: ":8080",
		BaseURL:       "http://localhost:8080",
		UserKey:       "jds__63h3_7ds",
		SlugSalt:      "test salt",
		SlugMinLength: 5,
	}
	suite.ctx = context.Background()
	log := zerolog.Nop()
	suite.storage = inmemory.InitStorage(log)
	codec, _ := slugV1.InitCodec(suite.cfg.SlugSalt, suite.cfg.SlugMinLength)
	suite.registry, _ = registryV1.InitRegistry(codec, suite.storage)
	suite.directory, _ = directoryV1.InitDirectory(suite.storage)
	suite.secretary, _ = secretaryV1.NewSecretaryService(suite.cfg)
	cookieHandler, _ := middleware.NewCookieHandler(suite.secretary)
	urlHandler, _ := InitURLHandler(suite.registry, suite.directory, cookieHandler, suite.cfg, log)
	suite.router = chi.NewRouter()
	suite.router.Use(cookieHandler.CookieHandle)
	suite.router.Post("/api/login", urlHandler.HandleLogin())
	suite.router.Get("/api/user", urlHandler.HandleGetUser())
	suite.router.Post("/", urlHandler.HandlePostURL())
	suite.router.Post("/api/shorten", urlHandler.JSONHandlePostURL())
	suite.router.Get("/api/user/urls", urlHandler.HandleGetURLsByUserID())
	suite.router.Delete("/api/user/urls/{slug}", urlHandler.HandleDeleteURL())
	suite.router.Get("/ping", urlHandler.HandlePingDB())
	suite.router.Get("/{slug}", urlHandler.HandleGetURL())
	suite.ts = httptest.NewServer(suite.router)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ts.Close()
}

// TestHandlersTestSuite initializes test suite for being accessible
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

// sessionCookie registers a user directly and returns its session cookie and id.
func (suite *HandlersTestSuite) sessionCookie(externalID, displayName string) (*http.Cookie, string) {
	userID, err := suite.directory.Authenticate(suite.ctx, externalID, displayName)
	suite.Require().NoError(err)
	return &http.Cookie{
		Name:  middleware.UserCookieKey,
		Value: suite.secretary.Encode(userID),
		Path:  "/",
	}, userID
}

func noRedirectClient() *resty.Client {
	client := resty.New()
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	return client
}

func (suite *HandlersTestSuite) TestHandleLogin() {
	client := resty.New()
	body, _ := json.Marshal(modeldto.RequestLogin{ExternalID: "fb123", DisplayName: "Alice"})
	res, err := client.R().SetHeader("Content-Type", "application/json").SetBody(body).Post(suite.ts.URL + "/api/login")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	var first modeldto.ResponseUser
	suite.Require().NoError(json.Unmarshal(res.Body(), &first))
	assert.Equal(suite.T(), "Alice", first.DisplayName)
	assert.NotEmpty(suite.T(), first.UserID)
	var sessionSet bool
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.UserCookieKey && cookie.Value != "" {
			sessionSet = true
		}
	}
	assert.True(suite.T(), sessionSet)

	// repeat login with a different display name returns the same user unchanged
	body, _ = json.Marshal(modeldto.RequestLogin{ExternalID: "fb123", DisplayName: "Mallory"})
	res, err = client.R().SetHeader("Content-Type", "application/json").SetBody(body).Post(suite.ts.URL + "/api/login")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	var second modeldto.ResponseUser
	suite.Require().NoError(json.Unmarshal(res.Body(), &second))
	assert.Equal(suite.T(), first.UserID, second.UserID)
	assert.Equal(suite.T(), "Alice", second.DisplayName)
}

func (suite *HandlersTestSuite) TestHandleLoginInvalid() {
	client := resty.New()
	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "empty external id",
			body: `{"external_id":"","display_name":"Alice"}`,
			want: http.StatusBadRequest,
		},
		{
			name: "malformed JSON",
			body: `{"external_id":`,
			want: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			res, err := client.R().SetHeader("Content-Type", "application/json").SetBody(tt.body).Post(suite.ts.URL + "/api/login")
			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, tt.want, res.StatusCode())
		})
	}
}

func (suite *HandlersTestSuite) TestHandleGetUser() {
	cookie, userID := suite.sessionCookie("fb123", "Alice")
	client := resty.New()
	res, err := client.R().SetCookie(cookie).Get(suite.ts.URL + "/api/user")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	var user modeldto.ResponseUser
	suite.Require().NoError(json.Unmarshal(res.Body(), &user))
	assert.Equal(suite.T(), userID, user.UserID)
	assert.Equal(suite.T(), "Alice", user.DisplayName)

	// no session cookie
	res, err = client.R().Get(suite.ts.URL + "/api/user")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusUnauthorized, res.StatusCode())

	// tampered session cookie
	res, err = client.R().SetCookie(&http.Cookie{Name: middleware.UserCookieKey, Value: "garbage", Path: "/"}).Get(suite.ts.URL + "/api/user")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusUnauthorized, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandlePostURL() {
	cookie, _ := suite.sessionCookie("fb123", "Alice")
	client := resty.New()
	res, err := client.R().SetCookie(cookie).SetBody("https://www.some-url.com").Post(suite.ts.URL + "/")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusCreated, res.StatusCode())
	assert.True(suite.T(), strings.HasPrefix(string(res.Body()), suite.cfg.BaseURL+"/"))

	// unauthenticated
	res, err = client.R().SetBody("https://www.some-url.com").Post(suite.ts.URL + "/")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusUnauthorized, res.StatusCode())
}

func (suite *HandlersTestSuite) TestJSONHandlePostURL() {
	cookie, _ := suite.sessionCookie("fb123", "Alice")
	client := resty.New()
	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "correct URL",
			body: `{"url":"https://www.some-url.com"}`,
			want: http.StatusCreated,
		},
		{
			name: "invalid URL",
			body: `{"url":"some_invalid_URL"}`,
			want: http.StatusBadRequest,
		},
		{
			name: "malformed JSON",
			body: `{"url":`,
			want: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			res, err := client.R().SetCookie(cookie).SetHeader("Content-Type", "application/json").SetBody(tt.body).Post(suite.ts.URL + "/api/shorten")
			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, tt.want, res.StatusCode())
		})
	}
}

func (suite *HandlersTestSuite) TestHandleGetURL() {
	_, userID := suite.sessionCookie("fb123", "Alice")
	slug, err := suite.registry.Shorten(suite.ctx, userID, "https://www.some-url.com")
	suite.Require().NoError(err)
	client := noRedirectClient()

	res, err := client.R().Get(suite.ts.URL + "/" + slug)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusTemporaryRedirect, res.StatusCode())
	assert.Equal(suite.T(), "https://www.some-url.com", res.Header().Get("Location"))

	// each successful redirect adds exactly one visit
	res, err = client.R().Get(suite.ts.URL + "/" + slug)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusTemporaryRedirect, res.StatusCode())
	links, _ := suite.registry.ListByUser(suite.ctx, userID)
	suite.Require().Len(links, 1)
	assert.Equal(suite.T(), int64(2), links[0].VisitCount)

	// malformed and absent slugs are indistinguishable
	res, err = client.R().Get(suite.ts.URL + "/!!!not-a-slug!!!")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusNotFound, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleGetURLConcurrent() {
	_, userID := suite.sessionCookie("fb123", "Alice")
	slug, err := suite.registry.Shorten(suite.ctx, userID, "https://www.some-url.com")
	suite.Require().NoError(err)
	const visitors = 50
	var wg sync.WaitGroup
	wg.Add(visitors)
	for i := 0; i < visitors; i++ {
		go func() {
			defer wg.Done()
			client := noRedirectClient()
			res, err := client.R().Get(suite.ts.URL + "/" + slug)
			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), http.StatusTemporaryRedirect, res.StatusCode())
		}()
	}
	wg.Wait()
	links, _ := suite.registry.ListByUser(suite.ctx, userID)
	suite.Require().Len(links, 1)
	assert.Equal(suite.T(), int64(visitors), links[0].VisitCount)
}

func (suite *HandlersTestSuite) TestHandleGetURLsByUserID() {
	cookieA, userA := suite.sessionCookie("fb123", "Alice")
	cookieB, _ := suite.sessionCookie("fb456", "Bob")
	client := resty.New()

	// no links yet
	res, err := client.R().SetCookie(cookieA).Get(suite.ts.URL + "/api/user/urls")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusNoContent, res.StatusCode())

	slug, err := suite.registry.Shorten(suite.ctx, userA, "https://www.some-url.com")
	suite.Require().NoError(err)
	res, err = client.R().SetCookie(cookieA).Get(suite.ts.URL + "/api/user/urls")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	var links []modeldto.ResponseUserLink
	suite.Require().NoError(json.Unmarshal(res.Body(), &links))
	suite.Require().Len(links, 1)
	assert.Equal(suite.T(), suite.cfg.BaseURL+"/"+slug, links[0].ShortURL)
	assert.Equal(suite.T(), "https://www.some-url.com", links[0].URL)

	// another user's listing never includes foreign links
	res, err = client.R().SetCookie(cookieB).Get(suite.ts.URL + "/api/user/urls")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusNoContent, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleDeleteURL() {
	cookieA, userA := suite.sessionCookie("fb123", "Alice")
	cookieB, _ := suite.sessionCookie("fb456", "Bob")
	slug, err := suite.registry.Shorten(suite.ctx, userA, "https://www.some-url.com")
	suite.Require().NoError(err)
	client := noRedirectClient()

	// a foreign delete reports success and leaves the link resolvable
	res, err := client.R().SetCookie(cookieB).Delete(suite.ts.URL + "/api/user/urls/" + slug)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusAccepted, res.StatusCode())
	res, err = client.R().Get(suite.ts.URL + "/" + slug)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusTemporaryRedirect, res.StatusCode())

	// the owner's delete is final
	res, err = client.R().SetCookie(cookieA).Delete(suite.ts.URL + "/api/user/urls/" + slug)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusAccepted, res.StatusCode())
	res, err = client.R().Get(suite.ts.URL + "/" + slug)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusNotFound, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandlePingDB() {
	client := resty.New()
	res, err := client.R().Get(suite.ts.URL + "/ping")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
}
