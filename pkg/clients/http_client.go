package clients

import (
	"net/http"
	"time"
)

const timeout = time.Second * 15

// HTTPClientI is the outbound surface the notification dispatcher
// delivers through; tests substitute the generated mock.
type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}
