package summarizer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSummarizer(baseURL string, timeoutInSecond, maxPerMinute int) *httpSummarizer {
	cfg := &config.InternalConfig{
		Summarizer: config.Summarizer{
			BaseURL:              baseURL,
			APIKey:               "test-key",
			TimeoutInSecond:      timeoutInSecond,
			MaxRequestsPerMinute: maxPerMinute,
		},
	}
	return NewHTTPSummarizer(cfg, zap.NewNop()).(*httpSummarizer)
}

func TestSummarizeReturnsModelSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.BearerPrefix+"test-key", r.Header.Get(constvars.HeaderAuthorization))
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write([]byte(`{"summary":"Hemoglobin slightly low, rest normal."}`))
	}))
	defer server.Close()

	s := newTestSummarizer(server.URL, 5, 30)

	summary, err := s.Summarize(context.Background(), "HGB 11.2 g/dL ...")
	require.NoError(t, err)
	assert.Equal(t, "Hemoglobin slightly low, rest normal.", summary)
}

func TestSummarizeSlowModelSurfacesAsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	s := newTestSummarizer(server.URL, 5, 30)
	s.httpClient.Timeout = 50 * time.Millisecond

	_, err := s.Summarize(context.Background(), "some report text")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
}

func TestSummarizeNonOKStatusIsARequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := newTestSummarizer(server.URL, 5, 30)

	_, err := s.Summarize(context.Background(), "some report text")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}

func TestSummarizeThrottlesBurstsAboveTheQuota(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"summary":"ok"}`))
	}))
	defer server.Close()

	// Burst of one: the second immediate call must be rejected locally
	// without reaching the model.
	s := newTestSummarizer(server.URL, 5, 1)

	_, err := s.Summarize(context.Background(), "first")
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), "second")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
}
