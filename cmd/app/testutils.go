package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jkarvanen/bloglist/internal/blogservice"
	"github.com/jkarvanen/bloglist/internal/common"
	"github.com/jkarvanen/bloglist/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &Config{
		Port:        "4000",
		Environment: "test",
		JWTSecret:   "test-secret",
	}

	userService := userservice.NewUserService(db, cfg.JWTSecret)

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userService,
		blogService: blogservice.NewBlogService(db, userService),
	}

	return app, db
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, []byte) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, body
}

func unmarshalJSON(t *testing.T, body []byte, dst any) {
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("could not unmarshal response body %q: %v", body, err)
	}
}

func (ts *testServer) do(t *testing.T, method, path string, payload any, token *string) (int, http.Header, []byte) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string) (int, http.Header, []byte) {
	return ts.do(t, http.MethodGet, path, nil, nil)
}

func (ts *testServer) post(t *testing.T, path string, payload any, token *string) (int, http.Header, []byte) {
	return ts.do(t, http.MethodPost, path, payload, token)
}

func (ts *testServer) put(t *testing.T, path string, payload any) (int, http.Header, []byte) {
	return ts.do(t, http.MethodPut, path, payload, nil)
}

func (ts *testServer) delete(t *testing.T, path string) (int, http.Header, []byte) {
	return ts.do(t, http.MethodDelete, path, nil, nil)
}
