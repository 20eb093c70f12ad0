package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	client := New(5 * time.Second)
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestDoFunc(t *testing.T) {
	var called bool
	var client HTTPClient = DoFunc(func(req *http.Request) (*http.Response, error) {
		called = true
		rec := httptest.NewRecorder()
		rec.WriteHeader(http.StatusNoContent)
		return rec.Result(), nil
	})

	req, err := http.NewRequest(http.MethodGet, "http://example.invalid", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
