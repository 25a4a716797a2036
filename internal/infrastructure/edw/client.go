// Package edw calls the analytics warehouse stored procedure API.
package edw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"billing_core/internal/config"
	"billing_core/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	ErrNotConfigured      = interfaces.ErrGatewayNotConfigured
	ErrGatewayUnavailable = interfaces.ErrGatewayUnavailable
)

// StatusError is returned for non-2xx answers. 5xx errors match ErrGatewayUnavailable.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("edw returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrGatewayUnavailable && e.StatusCode >= http.StatusInternalServerError
}

type procedureRequest struct {
	StoredProcedureID         int            `json:"storedProcedureId"`
	StoredProcedureParameters map[string]any `json:"storedProcedureParameters"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *zap.Logger
}

var _ interfaces.IEDWGateway = (*Client)(nil)

// NewClient builds a client whose requests carry a client-credentials bearer
// token. Without a token URL requests are sent unauthenticated.
func NewClient(cfg config.EDWConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	base := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}

	httpClient := base
	if cfg.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		if cfg.Scope != "" {
			cc.Scopes = []string{cfg.Scope}
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		httpClient = cc.Client(ctx)
		httpClient.Timeout = base.Timeout
	}
	return NewClientWithHTTP(cfg.Endpoint, httpClient, log)
}

// NewClientWithHTTP uses httpClient as is.
func NewClientWithHTTP(endpoint string, httpClient *http.Client, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{endpoint: endpoint, httpClient: httpClient, log: log}
}

// Execute runs a stored procedure and decodes its JSON result into out. An empty
// body reports found=false and leaves out untouched.
func (c *Client) Execute(ctx context.Context, procedureID int, params map[string]any, out any) (bool, error) {
	if c.endpoint == "" {
		return false, ErrNotConfigured
	}

	payload, err := json.Marshal(procedureRequest{StoredProcedureID: procedureID, StoredProcedureParameters: params})
	if err != nil {
		return false, fmt.Errorf("encode edw request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read edw response: %w", err)
	}
	c.log.Debug("[edw][client] procedure executed",
		zap.Int("procedure_id", procedureID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("decode edw response: %w", err)
	}
	return true, nil
}
