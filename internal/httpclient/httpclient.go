package httpclient

import (
	"net/http"
	"time"
)

// HTTPClient is the part of *http.Client the API clients use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoFunc adapts a plain function to HTTPClient.
type DoFunc func(req *http.Request) (*http.Response, error)

func (f DoFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// New returns a client whose requests give up after timeout.
func New(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
