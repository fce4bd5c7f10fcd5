package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch_Success(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ip": "8.8.8.8",
			"hostname": "dns.google",
			"city": "Mountain View",
			"region": "California",
			"country": "US",
			"org": "AS15169 Google LLC",
			"loc": "37.4056,-122.0775"
		}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 10*time.Second)
	rec, err := c.Fetch(context.Background(), "8.8.8.8")
	require.NoError(t, err)

	assert.Equal(t, "/8.8.8.8/json", gotPath)
	assert.Equal(t, "8.8.8.8", rec.IP)
	assert.Equal(t, "dns.google", rec.Hostname)
	assert.Equal(t, "Mountain View", rec.City)
	assert.Equal(t, "37.4056,-122.0775", rec.Loc)
}

func TestClient_Fetch_MissingFieldsStayEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ip": "2001:db8::1"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 10*time.Second)
	rec, err := c.Fetch(context.Background(), "2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::1", rec.IP)
	assert.Empty(t, rec.City)
	assert.Empty(t, rec.Loc)
}

func TestClient_Fetch_NonAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 10*time.Second)
	_, err := c.Fetch(context.Background(), "8.8.8.8")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "want APIError, got %v", err)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "429")
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 10*time.Second)
	_, err := c.Fetch(context.Background(), "8.8.8.8")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "want ParseError, got %v", err)
}

func TestClient_Fetch_NetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	c := NewClient(ts.URL, time.Second)
	_, err := c.Fetch(context.Background(), "8.8.8.8")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr), "want TransportError, got %v", err)
}

func TestClient_Fetch_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer ts.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	c := NewClient(ts.URL, 10*time.Second)
	_, err := c.Fetch(ctx, "8.8.8.8")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr), "want TransportError, got %v", err)
	assert.ErrorIs(t, err, context.Canceled)
}
