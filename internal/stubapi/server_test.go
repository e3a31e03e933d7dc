package stubapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifsetiawan/womshop/internal/client/api"
	"github.com/arifsetiawan/womshop/internal/client/models"
	"github.com/arifsetiawan/womshop/internal/logging"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token(ctx context.Context) (string, error) { return s.token, nil }

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := NewServer("test-secret", logger)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func newClient(t *testing.T, ts *httptest.Server, tokens *staticTokens) *api.RESTClient {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return api.NewRESTClient(ts.URL, 5*time.Second, tokens, logger)
}

func TestLogin_RoundTrip(t *testing.T) {
	_, ts := newTestServer(t)
	client := newClient(t, ts, &staticTokens{})

	resp, err := client.Login(context.Background(), "emilys", "emilyspass")
	require.NoError(t, err)
	assert.Equal(t, "emilys", resp.Username)
	assert.Equal(t, "Emily Johnson", resp.DisplayName())
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, ts := newTestServer(t)
	client := newClient(t, ts, &staticTokens{})

	_, err := client.Login(context.Background(), "emilys", "wrongpass")
	require.Error(t, err)

	apiErr := &api.Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindServer, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestListProducts_Pagination(t *testing.T) {
	srv, ts := newTestServer(t)
	client := newClient(t, ts, &staticTokens{})

	page, err := client.FetchProducts(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, len(srv.catalog), page.Total)
	assert.Equal(t, 1, page.Skip)
	require.Len(t, page.Products, 2)
	assert.Equal(t, 2, page.Products[0].ID)
	assert.Equal(t, 3, page.Products[1].ID)
}

func TestListProducts_SkipPastEnd(t *testing.T) {
	_, ts := newTestServer(t)
	client := newClient(t, ts, &staticTokens{})

	page, err := client.FetchProducts(context.Background(), 30, 1000)
	require.NoError(t, err)
	assert.Empty(t, page.Products)
}

func TestGetProduct_Found(t *testing.T) {
	_, ts := newTestServer(t)
	client := newClient(t, ts, &staticTokens{})

	p, err := client.FetchProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Essence Mascara Lash Princess", p.Title)
	assert.Equal(t, "9.27", p.EffectivePrice().StringFixed(2))
	require.Len(t, p.Reviews, 2)
}

func TestGetProduct_NotFound(t *testing.T) {
	_, ts := newTestServer(t)
	client := newClient(t, ts, &staticTokens{})

	_, err := client.FetchProductByID(context.Background(), 999)
	require.Error(t, err)

	apiErr := &api.Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Product with id '999' not found", apiErr.Message)
}

func TestMe_RequiresValidToken(t *testing.T) {
	srv, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/auth/me")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := srv.issueToken(models.User{ID: 1, Username: "emilys"}, time.Minute)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMe_RejectsExpiredToken(t *testing.T) {
	srv, ts := newTestServer(t)

	token, err := srv.issueToken(models.User{ID: 1, Username: "emilys"}, -time.Minute)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
