// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package azure talks to the Azure Resource Manager API for Azure Blockchain
// Service consortia.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/luxfi/deployer/pkg/constants"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	resourceAPIVersion   = "2019-10-01"
	blockchainAPIVersion = "2018-06-01-preview"
	blockchainProvider   = "Microsoft.Blockchain"
	memberResourceType   = "Microsoft.Blockchain/blockchainMembers"
	memberPort           = 3200
)

var ErrNoAccessKeys = errors.New("member has no access keys")

// APIError is a non-successful ARM response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("azure: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("azure: unexpected status %d", e.StatusCode)
}

// Credentials for an AAD service principal.
type Credentials struct {
	TenantID       string
	ClientID       string
	ClientSecret   string
	SubscriptionID string
	Location       string
	Endpoint       string
	TokenURL       string
}

func (c Credentials) complete() bool {
	return c.TenantID != "" && c.ClientID != "" && c.ClientSecret != "" && c.SubscriptionID != ""
}

type Client struct {
	log            *zap.Logger
	http           *http.Client
	endpoint       string
	subscriptionID string
	location       string
}

// NewClient authenticates with the client credentials flow.
func NewClient(ctx context.Context, log *zap.Logger, creds Credentials) (*Client, error) {
	if !creds.complete() {
		return nil, constants.ErrNoAzureCredentials
	}
	if creds.Endpoint == "" {
		creds.Endpoint = constants.DefaultAzureEndpoint
	}
	if creds.TokenURL == "" {
		creds.TokenURL = fmt.Sprintf(constants.DefaultAzureTokenURLTmpl, creds.TenantID)
	}
	cc := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     creds.TokenURL,
		Scopes:       []string{strings.TrimSuffix(creds.Endpoint, "/") + "/.default"},
	}
	return NewClientWithTokenSource(ctx, log, cc.TokenSource(ctx), creds), nil
}

func NewClientWithTokenSource(ctx context.Context, log *zap.Logger, ts oauth2.TokenSource, creds Credentials) *Client {
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = constants.APIRequestTimeout
	location := creds.Location
	if location == "" {
		location = constants.DefaultAzureLocation
	}
	return &Client{
		log:            log,
		http:           httpClient,
		endpoint:       strings.TrimSuffix(creds.Endpoint, "/"),
		subscriptionID: creds.SubscriptionID,
		location:       location,
	}
}

func (c *Client) Location() string {
	return c.location
}

func (c *Client) subscriptionPath(parts ...string) string {
	segments := []string{"subscriptions", url.PathEscape(c.subscriptionID)}
	for _, p := range parts {
		segments = append(segments, url.PathEscape(p))
	}
	return "/" + strings.Join(segments, "/")
}

func (c *Client) do(ctx context.Context, method, path, apiVersion string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	}
	u := fmt.Sprintf("%s%s?api-version=%s", c.endpoint, path, apiVersion)
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.log.Debug("azure request", zap.String("method", method), zap.String("path", path))
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("azure request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && method == http.MethodHead {
		return resp.StatusCode, nil
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if data, _ := io.ReadAll(resp.Body); json.Unmarshal(data, &envelope) == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return resp.StatusCode, apiErr
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode azure response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
