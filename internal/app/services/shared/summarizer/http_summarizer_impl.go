package summarizer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type summarizeRequest struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// The prompt mirrors what the dashboard shows the patient: a short plain
// language digest of an uploaded lab report.
const summarizePrompt = "Summarize the following lab report for a patient in plain language. Highlight abnormal values."

type httpSummarizer struct {
	log        *zap.Logger
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
}

// NewHTTPSummarizer wraps the external generative model endpoint. Every call
// is bounded by the configured timeout and throttled by an outbound limiter
// so a burst of summarize requests cannot exhaust the model quota.
func NewHTTPSummarizer(cfg *config.InternalConfig, log *zap.Logger) contracts.Summarizer {
	perMinute := cfg.Summarizer.MaxRequestsPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	return &httpSummarizer{
		log: log,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Summarizer.TimeoutInSecond) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		baseURL: cfg.Summarizer.BaseURL,
		apiKey:  cfg.Summarizer.APIKey,
	}
}

func (s *httpSummarizer) Summarize(ctx context.Context, documentText string) (string, error) {
	if !s.limiter.Allow() {
		return "", exceptions.ErrSummarizerThrottled(nil)
	}

	payload, err := json.Marshal(summarizeRequest{
		Prompt: summarizePrompt,
		Text:   documentText,
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", exceptions.ErrSummarizerRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if s.apiKey != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// A deadline hit is retryable for the caller, never a hang.
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", exceptions.ErrSummarizerTimeout(err)
		}
		return "", exceptions.ErrSummarizerRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		s.log.Error("summarizer model returned non-200",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", exceptions.ErrSummarizerRequest(fmt.Errorf("model responded with status %d", resp.StatusCode))
	}

	var out summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", exceptions.ErrSummarizerRequest(err)
	}
	return out.Summary, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
