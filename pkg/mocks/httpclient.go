package mocks

import (
	"context"

	"github.com/Behyna/ujumbesms/pkg/httpclient"
	"github.com/stretchr/testify/mock"
)

type HTTPClient struct {
	mock.Mock
}

func (_m *HTTPClient) Post(ctx context.Context, url string, body []byte, headers map[string]string) (*httpclient.Response, error) {
	ret := _m.Called(ctx, url, body, headers)

	var resp *httpclient.Response
	if r := ret.Get(0); r != nil {
		resp = r.(*httpclient.Response)
	}

	return resp, ret.Error(1)
}
