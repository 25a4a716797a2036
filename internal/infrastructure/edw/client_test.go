package edw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"billing_core/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type budgetRow struct {
	ValetDaily int `json:"valetDaily"`
}

func TestClient_Execute(t *testing.T) {
	t.Run("posts the procedure payload and decodes the answer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(1), body["storedProcedureId"])
			assert.Equal(t, map[string]any{"COST_CENTER": "0170", "PERIOD": "202403"}, body["storedProcedureParameters"])

			_, _ = w.Write([]byte(`[{"ValetDaily": 12}]`))
		}))
		defer srv.Close()

		c := NewClientWithHTTP(srv.URL, srv.Client(), nil)
		var rows []budgetRow
		found, err := c.Execute(context.Background(), 1, map[string]any{"COST_CENTER": "0170", "PERIOD": "202403"}, &rows)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []budgetRow{{ValetDaily: 12}}, rows)
	})

	t.Run("empty body is no data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClientWithHTTP(srv.URL, srv.Client(), nil)
		var rows []budgetRow
		found, err := c.Execute(context.Background(), 1, nil, &rows)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, rows)
	})

	t.Run("non-success carries status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad period", http.StatusBadRequest)
		}))
		defer srv.Close()

		c := NewClientWithHTTP(srv.URL, srv.Client(), nil)
		_, err := c.Execute(context.Background(), 1, nil, &[]budgetRow{})

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "bad period")
		assert.False(t, errors.Is(err, ErrGatewayUnavailable))
	})

	t.Run("5xx is gateway unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewClientWithHTTP(srv.URL, srv.Client(), nil)
		_, err := c.Execute(context.Background(), 4, nil, &[]budgetRow{})

		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		c := NewClientWithHTTP("", http.DefaultClient, nil)
		_, err := c.Execute(context.Background(), 1, nil, &[]budgetRow{})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestNewClient_UsesClientCredentialsToken(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"pnlBySite":[]}`))
	}))
	defer apiSrv.Close()

	c := NewClient(config.EDWConfig{
		Endpoint:       apiSrv.URL,
		TokenURL:       tokenSrv.URL,
		ClientID:       "id",
		ClientSecret:   "secret",
		Scope:          "api://id/.default",
		TimeoutSeconds: 5,
	}, nil)

	var out map[string]any
	found, err := c.Execute(context.Background(), 4, map[string]any{"SiteNumbers": "0170", "Year": "2024"}, &out)

	require.NoError(t, err)
	assert.True(t, found)
}
