package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Behyna/ujumbesms/pkg/httpclient"
)

type failingTransport struct{}

func (failingTransport) Post(context.Context, string, []byte, map[string]string) (*httpclient.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}

type statusTransport struct {
	status int
	body   string
}

func (s statusTransport) Post(context.Context, string, []byte, map[string]string) (*httpclient.Response, error) {
	return &httpclient.Response{
		StatusCode: s.status,
		Status:     fmt.Sprintf("%d %s", s.status, http.StatusText(s.status)),
		Body:       []byte(s.body),
	}, nil
}
