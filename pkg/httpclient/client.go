package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

var _ HTTPClient = (*httpClient)(nil)

type HTTPClient interface {
	Post(ctx context.Context, url string, body []byte, headers map[string]string) (*Response, error)
}

// Response is a fully read HTTP response. Status is the status line, e.g. "400 Bad Request".
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type httpClient struct {
	client *resty.Client
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &httpClient{client: c}
}

// NewFromResty wraps a preconfigured resty client, e.g. one with a custom transport or proxy.
func NewFromResty(c *resty.Client) HTTPClient {
	return &httpClient{client: c}
}

func (c *httpClient) Post(ctx context.Context, url string, body []byte, headers map[string]string) (*Response, error) {
	req := c.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(url)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Body(),
	}, nil
}
