package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hueyvil/inkpost/internal/userservice"
)

func TestRecoverPanic(t *testing.T) {
	app, _ := newTestApplication(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
}

func TestAuthenticate(t *testing.T) {
	app, db := newTestApplication(t)

	user := registerTestUser(t, app, "Test User", "testuser@example.com", "Secret123!")

	// echo back the identity the middleware resolved
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := app.getUserContext(r)
		if u.IsAnonymous() {
			w.Write([]byte("anonymous"))
			return
		}
		w.Write([]byte("user:" + u.Email))
	})

	middleware := app.authenticate(probe)

	makeRequest := func(cookie *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		res := httptest.NewRecorder()
		middleware.ServeHTTP(res, req)
		return res
	}

	t.Run("no cookie resolves to anonymous", func(t *testing.T) {
		res := makeRequest(nil)
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "anonymous", res.Body.String())
	})

	t.Run("garbage token resolves to anonymous", func(t *testing.T) {
		res := makeRequest(&http.Cookie{Name: sessionCookieName, Value: "not-a-token"})
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "anonymous", res.Body.String())
	})

	t.Run("valid token resolves to the user", func(t *testing.T) {
		token, err := app.sessions.Issue(user.ID)
		assert.NoError(t, err)

		res := makeRequest(&http.Cookie{Name: sessionCookieName, Value: token})
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "user:testuser@example.com", res.Body.String())
	})

	t.Run("valid token for a deleted user fails loudly", func(t *testing.T) {
		ghost := registerTestUser(t, app, "Ghost", "ghost@example.com", "Secret123!")
		token, err := app.sessions.Issue(ghost.ID)
		assert.NoError(t, err)

		_, err = db.Exec("DELETE FROM users WHERE id = $1", ghost.ID)
		assert.NoError(t, err)

		res := makeRequest(&http.Cookie{Name: sessionCookieName, Value: token})
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestRequireAuthUser(t *testing.T) {
	app, _ := newTestApplication(t)

	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	guarded := app.requireAuthUser(next)

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/new-post", nil)
		req = app.createUserContext(req, &userservice.AnonymousUser)
		res := httptest.NewRecorder()

		guarded.ServeHTTP(res, req)

		assert.Equal(t, http.StatusSeeOther, res.Code)
		assert.Equal(t, "/login", res.Header().Get("Location"))
		assert.False(t, called)
	})

	t.Run("authenticated user passes through", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/new-post", nil)
		req = app.createUserContext(req, &userservice.User{ID: 1, Name: "A", Email: "a@x.com"})
		res := httptest.NewRecorder()

		guarded.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.True(t, called)
	})
}
