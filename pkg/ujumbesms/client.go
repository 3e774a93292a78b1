package ujumbesms

import (
	"context"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/Behyna/ujumbesms/pkg/httpclient"
	"golang.org/x/net/http/httpguts"
)

const (
	HeaderAuthorization = "X-Authorization"
	HeaderEmail         = "Email"
	HeaderContentType   = "Content-Type"
	HeaderCacheControl  = "Cache-Control"
)

// Client talks to the UjumbeSMS API. It holds no per-call state and is safe for concurrent use.
// It never retries; every method performs exactly one HTTP round trip.
type Client struct {
	config Config
	client httpclient.HTTPClient
}

type Option func(*Client)

// WithHTTPClient replaces the default resty transport.
func WithHTTPClient(client httpclient.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	c := &Client{config: cfg}
	if _, err := c.headers(); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = httpclient.NewHTTPClient(cfg.Timeout)
	}

	return c, nil
}

func (c *Client) Config() Config {
	return c.config
}

func (c *Client) headers() (map[string]string, error) {
	if !validHeaderValue(c.config.APIKey) {
		return nil, newError(ErrCodeInvalidConfig, errors.New("invalid API key format"))
	}
	if !validHeaderValue(c.config.Email) {
		return nil, newError(ErrCodeInvalidConfig, errors.New("invalid email format"))
	}

	return map[string]string{
		HeaderAuthorization: c.config.APIKey,
		HeaderEmail:         c.config.Email,
		HeaderContentType:   "application/json",
		HeaderCacheControl:  "no-cache",
	}, nil
}

// validHeaderValue accepts visible ASCII, space and tab only.
func validHeaderValue(v string) bool {
	if !httpguts.ValidHeaderFieldValue(v) {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (c *Client) url(endpoint Endpoint) string {
	return c.config.BaseURL + endpoint.Path()
}

// SendMessages posts every bag of the request to the messaging endpoint in one call.
func (c *Client) SendMessages(ctx context.Context, request MessageRequest) (MessagingApiResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return MessagingApiResponse{}, newError(ErrCodeSerialization, err)
	}

	var response MessagingApiResponse
	if err := c.post(ctx, EndpointMessaging, body, &response); err != nil {
		return MessagingApiResponse{}, err
	}

	return response, nil
}

func (c *Client) SendSingleMessage(ctx context.Context, numbers, message, sender string) (MessagingApiResponse, error) {
	request := NewMessageRequest()
	request.AddMessageBag(numbers, message, sender)
	return c.SendMessages(ctx, request)
}

func (c *Client) Balance(ctx context.Context) (BalanceApiResponse, error) {
	var response BalanceApiResponse
	if err := c.post(ctx, EndpointBalance, nil, &response); err != nil {
		return BalanceApiResponse{}, err
	}

	return response, nil
}

func (c *Client) MessagesHistory(ctx context.Context) (MessageHistoryApiResponse, error) {
	var response MessageHistoryApiResponse
	if err := c.post(ctx, EndpointMessages, nil, &response); err != nil {
		return MessageHistoryApiResponse{}, err
	}

	return response, nil
}

// post decides success from the HTTP status only; the embedded status.code is not inspected.
func (c *Client) post(ctx context.Context, endpoint Endpoint, body []byte, out any) error {
	headers, err := c.headers()
	if err != nil {
		return err
	}

	resp, err := c.client.Post(ctx, c.url(endpoint), body, headers)
	if err != nil {
		return newError(ErrCodeNetwork, err)
	}

	if !resp.IsSuccess() {
		return newError(ErrCodeAPI, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(resp.Body),
		})
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return newError(ErrCodeSerialization, err)
	}

	return nil
}
