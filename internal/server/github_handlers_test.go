package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beingscholar/devconnector/internal/github"
	"github.com/beingscholar/devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGithubHarness(upstream http.HandlerFunc) (*fiber.App, *httptest.Server) {
	srv := httptest.NewServer(upstream)
	s := &Server{
		config:       testConfig(),
		githubClient: github.NewClient(srv.URL, ""),
	}
	app := fiber.New()
	app.Get("/api/profile/github/:username", s.GetGithubRepos)
	return app, srv
}

func TestGetGithubRepos(t *testing.T) {
	t.Run("forwards upstream repositories", func(t *testing.T) {
		app, srv := newGithubHarness(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "per_page=5&sort=created:asc", r.URL.RawQuery)
			_, _ = w.Write([]byte(`[{"name":"devconnector"}]`))
		})
		defer srv.Close()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/profile/github/octocat", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var repos []map[string]any
		decodeJSON(t, resp, &repos)
		require.Len(t, repos, 1)
		assert.Equal(t, "devconnector", repos[0]["name"])
	})

	t.Run("forwards upstream status on failure", func(t *testing.T) {
		app, srv := newGithubHarness(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		})
		defer srv.Close()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/profile/github/ghost", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body models.ErrorResponse
		decodeJSON(t, resp, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "No Github profile found", body.Errors[0].Msg)
	})

	t.Run("transport failure maps to not found", func(t *testing.T) {
		app, srv := newGithubHarness(func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/profile/github/octocat", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body models.ErrorResponse
		decodeJSON(t, resp, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "No Github profile found", body.Errors[0].Msg)
	})
}
