package main

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hueyvil/inkpost/internal/blogservice"
	"github.com/hueyvil/inkpost/internal/common"
	"github.com/hueyvil/inkpost/internal/session"
	"github.com/hueyvil/inkpost/internal/userservice"
	"github.com/hueyvil/inkpost/internal/view"
)

type testServer struct {
	*httptest.Server
}

// newTestServer wraps the handler in a server whose client keeps cookies
// across requests and surfaces redirects instead of following them, so
// tests can assert on the Location header.
func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	ts.Client().Jar = jar
	ts.Client().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	renderer, err := view.NewTemplateRenderer()
	assert.NoError(t, err)

	cfg := &Config{
		Port:          ":0",
		Environment:   "test",
		SessionSecret: "test-signing-secret",
		DatabaseDSN:   defaultDSN,
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db),
		blogService: blogservice.NewBlogService(db),
		sessions:    session.NewManager(cfg.SessionSecret),
		view:        renderer,
	}

	return app, db
}

func readBody(t *testing.T, res *http.Response) (int, http.Header, string) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, string(body)
}

func (ts *testServer) get(t *testing.T, path string) (int, http.Header, string) {
	res, err := ts.Client().Get(ts.URL + path)
	if err != nil {
		t.Fatal(err)
	}

	return readBody(t, res)
}

func (ts *testServer) postForm(t *testing.T, path string, form url.Values) (int, http.Header, string) {
	req, err := http.NewRequest(http.MethodPost, ts.URL+path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readBody(t, res)
}

// login registers nothing; the account must already exist.
func (ts *testServer) login(t *testing.T, email, password string) {
	status, _, _ := ts.postForm(t, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	assert.Equal(t, http.StatusSeeOther, status)
}

func registerTestUser(t *testing.T, app *application, name, email, password string) *userservice.User {
	user, err := app.userService.RegisterUser(context.Background(), name, email, password)
	assert.NoError(t, err)
	return user
}

func createTestPost(t *testing.T, app *application, authorID int, title string) *blogservice.Post {
	post, err := app.blogService.CreatePost(context.Background(), &blogservice.CreatePostRequest{
		Title:    title,
		Subtitle: "a subtitle",
		Date:     "January 01, 2026",
		Body:     "<p>some body text</p>",
		ImgURL:   "https://example.com/image.jpg",
		AuthorID: authorID,
	})
	assert.NoError(t, err)
	return post
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	assert.NoError(t, err)
	return n
}
