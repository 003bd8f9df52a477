package streamchat

// Package streamchat implements ports.ChatBackend against the Stream Chat
// REST API. All vendor specifics (server-side JWT auth, wire shapes, the
// duplicate-channel error code) stay inside this package.

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
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stackfall/workdesk/internal/ports"
)

// codeAlreadyExists is Stream's duplicate-resource error code. A create
// racing another replica can surface it; the channel exists either way.
const codeAlreadyExists = 4

// Config captures the subset of Stream Chat behaviour we need.
type Config struct {
	BaseURL     string
	APIKey      string
	APISecret   string
	ChannelType string
	Timeout     time.Duration
	Client      *http.Client
}

// Client talks to the Stream Chat server-side API.
type Client struct {
	baseURL     string
	apiKey      string
	apiSecret   []byte
	channelType string
	serverToken string
	client      *http.Client
}

// NewClient builds a Stream Chat client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("stream chat api key is required")
	}
	secret := strings.TrimSpace(cfg.APISecret)
	if secret == "" {
		return nil, errors.New("stream chat api secret is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://chat.stream-io-api.com"
	}

	channelType := strings.TrimSpace(cfg.ChannelType)
	if channelType == "" {
		channelType = "messaging"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		apiSecret:   []byte(secret),
		channelType: channelType,
		client:      hc,
	}

	// The server token is static for the lifetime of the secret.
	serverToken, err := c.signClaims(jwt.MapClaims{"server": true})
	if err != nil {
		return nil, fmt.Errorf("sign server token: %w", err)
	}
	c.serverToken = serverToken
	return c, nil
}

// APIKey returns the public key browser clients connect with.
func (c *Client) APIKey() string {
	return c.apiKey
}

// MintUserToken issues a client-side auth token for the given chat user.
func (c *Client) MintUserToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	return c.signClaims(jwt.MapClaims{"user_id": userID})
}

func (c *Client) signClaims(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.apiSecret)
}

// UpsertUser creates or updates a chat user profile.
func (c *Client) UpsertUser(ctx context.Context, user ports.ChatUser) error {
	if user.ID == "" {
		return errors.New("chat user id is required")
	}
	payload := map[string]any{
		"users": map[string]any{user.ID: upsertUserBody(user)},
	}
	return c.do(ctx, http.MethodPost, "/users", nil, payload, nil)
}

func upsertUserBody(user ports.ChatUser) map[string]any {
	body := map[string]any{"id": user.ID}
	if user.Name != "" {
		body["name"] = user.Name
	}
	if user.Image != "" {
		body["image"] = user.Image
	}
	return body
}

// CreateOrGetChannel ensures the channel exists and returns without error
// when it already does.
func (c *Client) CreateOrGetChannel(ctx context.Context, ch ports.ChannelDescriptor) error {
	channelType := ch.Type
	if channelType == "" {
		channelType = c.channelType
	}
	if ch.ID == "" {
		return errors.New("channel id is required")
	}

	data := map[string]any{}
	if ch.CreatedByID != "" {
		data["created_by_id"] = ch.CreatedByID
	}
	payload := map[string]any{"data": data}

	path := fmt.Sprintf("/channels/%s/%s/query", url.PathEscape(channelType), url.PathEscape(ch.ID))
	err := c.do(ctx, http.MethodPost, path, nil, payload, nil)
	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.Code == codeAlreadyExists {
		return nil
	}
	return err
}

// ChannelMembers returns which of the given user IDs are already members of
// the channel. The query is filtered server-side, so the response stays
// bounded by len(memberIDs) rather than the channel size.
func (c *Client) ChannelMembers(ctx context.Context, channelID string, memberIDs []string) ([]string, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}

	filter := map[string]any{
		"type": c.channelType,
		"id":   channelID,
		"filter_conditions": map[string]any{
			"id": map[string]any{"$in": memberIDs},
		},
	}
	raw, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("encode member filter: %w", err)
	}
	query := url.Values{"payload": []string{string(raw)}}

	var resp struct {
		Members []struct {
			UserID string `json:"user_id"`
		} `json:"members"`
	}
	if err := c.do(ctx, http.MethodGet, "/members", query, nil, &resp); err != nil {
		return nil, err
	}

	present := make([]string, 0, len(resp.Members))
	for _, m := range resp.Members {
		if m.UserID != "" {
			present = append(present, m.UserID)
		}
	}
	return present, nil
}

// AddChannelMembers adds the given users to the channel without disturbing
// existing membership.
func (c *Client) AddChannelMembers(ctx context.Context, channelID string, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}
	payload := map[string]any{
		"add_members":  memberIDs,
		"hide_history": false,
	}
	path := fmt.Sprintf("/channels/%s/%s", url.PathEscape(c.channelType), url.PathEscape(channelID))
	return c.do(ctx, http.MethodPost, path, nil, payload, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	endpoint := c.baseURL + path
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	endpoint += "?" + query.Encode()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode chat request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.serverToken)
	req.Header.Set("Stream-Auth-Type", "jwt")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ports.ErrBackendUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode chat response: %w", err)
		}
		return nil
	}

	apiErr := decodeAPIError(resp)
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: %v", ports.ErrBackendUnavailable, apiErr)
	}
	return apiErr
}

// apiError is Stream's error envelope.
type apiError struct {
	StatusCode int    `json:"StatusCode"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("stream chat: %s (code %d, status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("stream chat: request failed with status %d", e.StatusCode)
}

func decodeAPIError(resp *http.Response) *apiError {
	apiErr := &apiError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}
	if err := json.Unmarshal(raw, apiErr); err != nil {
		return apiErr
	}
	if apiErr.StatusCode == 0 {
		apiErr.StatusCode = resp.StatusCode
	}
	return apiErr
}
