package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blog/handlers"
	"blog/models"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp builds the full router the same way main does, backed by an
// in-memory database.
func newTestApp(t *testing.T) (*gin.Engine, *models.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	store := models.NewStore(gormDB)
	require.NoError(t, store.Init())

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.tmpl")
	cookieStore := gormsessions.NewStore(gormDB, true, []byte("test session key"))
	cookieStore.Options(sessions.Options{Path: "/"})
	router.Use(sessions.Sessions("token", cookieStore))
	handlers.NewApp(store).Routes(router)
	return router, store
}

// client is a minimal browser stand-in that carries session cookies between
// requests.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router, cookies: map[string]*http.Cookie{}}
}

func (tc *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	tc.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range tc.cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	for _, cookie := range w.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(tc.cookies, cookie.Name)
		} else {
			tc.cookies[cookie.Name] = cookie
		}
	}
	return w
}

func (tc *client) get(path string) *httptest.ResponseRecorder {
	return tc.do(http.MethodGet, path, nil)
}

func (tc *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return tc.do(http.MethodPost, path, form)
}

func (tc *client) register(username, email, password string) {
	tc.t.Helper()
	w := tc.postForm("/register", url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
	})
	require.Equal(tc.t, http.StatusFound, w.Code)
	require.Equal(tc.t, "/login", w.Header().Get("Location"))
}

func (tc *client) login(username, password string) {
	tc.t.Helper()
	w := tc.postForm("/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(tc.t, http.StatusFound, w.Code)
	require.Equal(tc.t, "/", w.Header().Get("Location"))
}
