// Package whatsapp is the HTTP client for the WhatsApp gateway. The gateway
// owns the WhatsApp session; this client only posts composed messages to it
// and checks whether the session is connected.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/engine"
	"github.com/enersim/usage-alert-service/pkg/models"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Client implements engine.Transport against the gateway's JSON API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL string, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type sendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type sendResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

type statusResponse struct {
	Ready bool `json:"ready"`
}

func (c *Client) SendMessage(ctx context.Context, to string, message string) (*models.SendResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertWhatsapp),
	)

	body, err := json.Marshal(sendRequest{To: to, Message: message})
	if err != nil {
		return nil, &engine.TransportError{Reason: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/send", bytes.NewReader(body))
	if err != nil {
		return nil, &engine.TransportError{Reason: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &engine.TransportError{Reason: "gateway unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &engine.TransportError{Reason: fmt.Sprintf("gateway returned status %d", resp.StatusCode)}
	}

	var parsed sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &engine.TransportError{Reason: "bad gateway response", Err: err}
	}

	if !parsed.Success {
		reason := parsed.Error
		if reason == "" {
			reason = "gateway rejected message"
		}
		return nil, &engine.TransportError{Reason: reason}
	}

	logger.Info("Gateway accepted message",
		zap.String("to", to),
		zap.String("messageId", parsed.ID),
	)

	return &models.SendResult{MessageID: parsed.ID}, nil
}

// Ready reports whether the gateway session is connected. Any transport or
// decode failure counts as not ready.
func (c *Client) Ready(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/status", nil)
	if err != nil {
		return false
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var parsed statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return false
	}

	return parsed.Ready
}
