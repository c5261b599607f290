// file: internals/features/users/provisioning/service/accounts_client.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Account es la cuenta recién creada en el servicio de auth.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type CreateAccountRequest struct {
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	EmailConfirm bool           `json:"email_confirm"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// AccountsClient es la API administrativa de creación de cuentas. Se invoca
// con la credencial de servicio (service role), nunca con el token del
// caller.
type AccountsClient interface {
	CreateUser(ctx context.Context, req CreateAccountRequest) (*Account, error)
}

/* =========================
   Impl HTTP (GoTrue admin)
========================= */

type HTTPAccountsClient struct {
	BaseURL    string
	AnonKey    string
	ServiceKey string
	HTTPClient *http.Client
}

func NewHTTPAccountsClient(baseURL, anonKey, serviceKey string) *HTTPAccountsClient {
	return &HTTPAccountsClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		AnonKey:    anonKey,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPAccountsClient) CreateUser(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/auth/v1/admin/users", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	httpReq.Header.Set("apikey", c.AnonKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// el mensaje upstream se propaga tal cual
		return nil, errors.New(upstreamMessage(body, resp.StatusCode))
	}

	var acc Account
	if err := json.Unmarshal(body, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func upstreamMessage(body []byte, status int) string {
	var parsed struct {
		Msg       string `json:"msg"`
		Message   string `json:"message"`
		ErrorDesc string `json:"error_description"`
		Error     string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, m := range []string{parsed.Msg, parsed.Message, parsed.ErrorDesc, parsed.Error} {
			if m != "" {
				return m
			}
		}
	}
	return fmt.Sprintf("el servicio de cuentas respondió %d", status)
}
