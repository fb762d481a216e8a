// Package transport implements the HTTP layer of the HRMS client: default
// headers, bearer auth, response classification, and network-only retry.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/auth"
	"github.com/hrbuddy/hrms-go/internal/diag"
	"github.com/hrbuddy/hrms-go/internal/types"
)

const (
	apiPrefix      = "/api"
	healthEndpoint = "/health"

	authHeaderKey = "Authorization"
	contentType   = "application/json"
)

// Options for the REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
	Tokens      auth.TokenStore
	Diagnostics *diag.Diagnostics
}

// RESTTransport issues JSON requests against the HRMS API.
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	tokens      auth.TokenStore
	logger      types.Logger
	hooks       *types.Hooks
	diagnostics *diag.Diagnostics
}

// Acknowledgement is the synthesized result for successful non-JSON
// responses.
type Acknowledgement struct {
	Success bool `json:"success"`
}

// envelope is the standard HRMS response wrapper.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// NewRESTTransport creates a transport with the default retry policy when
// none is supplied.
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Session cookies ride along with bearer tokens.
	if opts.HTTPClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err == nil {
			opts.HTTPClient.Jar = jar
		}
	}

	if opts.Tokens == nil {
		opts.Tokens = auth.NewMemoryStore()
	}

	if opts.Diagnostics == nil {
		opts.Diagnostics = diag.New()
	}

	retryCfg := opts.RetryConfig
	if retryCfg == nil {
		retryCfg = types.DefaultRetryConfig()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = opts.HTTPClient
	retryClient.RetryMax = retryCfg.MaxRetries
	// Fixed delay between attempts.
	retryClient.RetryWaitMin = retryCfg.RetryWait
	retryClient.RetryWaitMax = retryCfg.RetryWait
	retryClient.Backoff = func(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
		return min
	}
	// Only transport-level failures are retried. HTTP error responses are
	// never retried: retrying a validation failure cannot change its outcome.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return err != nil, nil
	}
	if opts.Logger != nil {
		retryClient.Logger = &retryLogger{logger: opts.Logger}
	} else {
		retryClient.Logger = nil
	}

	headers := map[string]string{
		"Accept":       contentType,
		"Content-Type": contentType,
		"User-Agent":   types.UserAgent,
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		tokens:      opts.Tokens,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
		diagnostics: opts.Diagnostics,
	}
}

// Do issues a JSON request and decodes the response data into result.
// Errors carry classification flags; see types.Error.
func (t *RESTTransport) Do(ctx context.Context, method, path string, body, result interface{}) error {
	url := t.baseURL + apiPrefix + path

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	// Attach the bearer header only when a token is actually stored; never
	// send an empty or placeholder value.
	if token := t.tokens.Token(); token != "" {
		httpReq.Header.Set(authHeaderKey, "Bearer "+token)
	}

	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	if t.logger != nil {
		t.logger.Debug("API request", "method", method, "path", path)
	}

	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		classified := t.classifyTransportError(ctx, err, method, url, duration)
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, classified)
		}
		return classified
	}
	defer resp.Body.Close()

	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if t.logger != nil {
		t.logger.Debug("API response", "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	isJSON := mediaType == contentType || strings.HasSuffix(mediaType, "+json")

	if resp.StatusCode >= http.StatusBadRequest {
		return t.handleHTTPError(resp.StatusCode, respBody, isJSON, method, url, duration)
	}

	if !isJSON {
		// Non-JSON success: synthesize an acknowledgement.
		if ack, ok := result.(*Acknowledgement); ok {
			ack.Success = true
		}
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return errors.Wrap(err, "failed to parse response")
	}

	// A 200 carrying success:false is still a business-rule rejection.
	if env.Success != nil && !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		return t.validationError(msg, resp.StatusCode, respBody, method, url, duration)
	}

	if result == nil {
		return nil
	}

	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return errors.Wrap(err, "failed to unmarshal result")
		}
		return nil
	}

	// Some endpoints reply without the data wrapper; tolerate both shapes.
	if err := json.Unmarshal(respBody, result); err != nil {
		return errors.Wrap(err, "failed to unmarshal result")
	}
	return nil
}

// Ping probes the server's health endpoint with a bounded timeout. It
// bypasses the retry policy: a probe that needs retries is already an
// answer.
func (t *RESTTransport) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, types.PingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+healthEndpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create ping request")
	}
	req.Header.Set("Accept", contentType)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return &types.Error{
			Code:                "SERVER_UNAVAILABLE",
			Message:             "server is not reachable",
			IsServerUnavailable: true,
			Err:                 types.ErrServerUnavailable,
		}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return &types.Error{
			Code:       "SERVER_ERROR",
			Message:    fmt.Sprintf("health check returned %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Err:        types.ErrServerError,
		}
	}
	return nil
}

// SetAuth stores the bearer token used for subsequent requests.
func (t *RESTTransport) SetAuth(token string) {
	_ = t.tokens.Set(token)
}

// ClearAuth removes the stored bearer token.
func (t *RESTTransport) ClearAuth() {
	_ = t.tokens.Clear()
}

// Diagnostics exposes the transport's bounded error buffers.
func (t *RESTTransport) Diagnostics() *diag.Diagnostics {
	return t.diagnostics
}

// doRequest executes the HTTP request through the retry client.
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, err
	}
	return t.retryClient.Do(retryReq)
}

// classifyTransportError maps a transport-level failure (after retries are
// exhausted) into a classified error.
func (t *RESTTransport) classifyTransportError(ctx context.Context, err error, method, url string, duration time.Duration) error {
	t.diagnostics.Network.Append(diag.Entry{
		Method:   method,
		URL:      url,
		Message:  err.Error(),
		Duration: duration.String(),
	})

	if t.logger != nil {
		t.logger.Error("network failure", "method", method, "url", url, "duration", duration, "error", err)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return &types.Error{
				Code:    "TIMEOUT",
				Message: "request timed out",
				URL:     url,
				Err:     types.ErrTimeout,
			}
		}
		return ctxErr
	}

	return &types.Error{
		Code:                "SERVER_UNAVAILABLE",
		Message:             "unable to connect to the server",
		URL:                 url,
		Err:                 types.ErrServerUnavailable,
		IsServerUnavailable: true,
	}
}

// handleHTTPError classifies a non-2xx response. HTTP errors are never
// retried; 401 evicts the stored token as a side effect.
func (t *RESTTransport) handleHTTPError(statusCode int, body []byte, isJSON bool, method, url string, duration time.Duration) error {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    string `json:"error_code"`
	}
	if isJSON {
		_ = json.Unmarshal(body, &errResp)
	}

	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}
	if msg == "" && !isJSON {
		// Non-JSON failure: keep the body as a text diagnostic.
		msg = strings.TrimSpace(truncate(string(body), 200))
	}

	switch statusCode {
	case http.StatusUnauthorized:
		// Force re-authentication on the next protected call.
		_ = t.tokens.Clear()
		t.recordAPIError(method, url, statusCode, msg, duration)
		return &types.Error{
			Code:       "AUTH_ERROR",
			Message:    "authentication required or token expired",
			StatusCode: statusCode,
			URL:        url,
			Err:        types.ErrNotAuthenticated,
		}

	case http.StatusForbidden:
		t.recordAPIError(method, url, statusCode, msg, duration)
		return &types.Error{
			Code:       "PERMISSION_ERROR",
			Message:    "insufficient permissions to access this resource",
			StatusCode: statusCode,
			URL:        url,
			Err:        types.ErrForbidden,
		}

	case http.StatusNotFound:
		return &types.Error{
			Code:       "NOT_FOUND",
			Message:    "resource not found or endpoint does not exist",
			StatusCode: statusCode,
			URL:        url,
			Err:        types.ErrNotFound,
		}

	case http.StatusTooManyRequests:
		return &types.Error{
			Code:       "RATE_LIMITED",
			Message:    msg,
			StatusCode: statusCode,
			URL:        url,
			Err:        types.ErrRateLimited,
		}

	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return &types.Error{
			Code:       "TIMEOUT",
			Message:    msg,
			StatusCode: statusCode,
			URL:        url,
			Err:        types.ErrTimeout,
		}

	case http.StatusBadRequest:
		return t.validationError(msg, statusCode, body, method, url, duration)

	default:
		if statusCode >= 500 {
			baseMsg := fmt.Sprintf("server error: %d", statusCode)
			if desc := httpStatusDescription(statusCode); desc != "" {
				baseMsg = fmt.Sprintf("server error: %d (%s)", statusCode, desc)
			}
			if msg != "" {
				baseMsg = fmt.Sprintf("%s: %s", baseMsg, msg)
			}
			t.recordAPIError(method, url, statusCode, baseMsg, duration)
			if t.logger != nil {
				t.logger.Error("server error", "method", method, "url", url, "status", statusCode, "duration", duration, "body", truncate(string(body), 500))
			}
			return &types.Error{
				Code:       "SERVER_ERROR",
				Message:    baseMsg,
				StatusCode: statusCode,
				URL:        url,
				RawBody:    string(body),
				Err:        types.ErrServerError,
			}
		}
		t.recordAPIError(method, url, statusCode, msg, duration)
		if t.logger != nil {
			t.logger.Error("HTTP error", "method", method, "url", url, "status", statusCode, "duration", duration, "body", truncate(string(body), 500))
		}
		return &types.Error{
			Code:       "HTTP_ERROR",
			Message:    fmt.Sprintf("HTTP error: %d", statusCode),
			StatusCode: statusCode,
			URL:        url,
			RawBody:    string(body),
		}
	}
}

// validationError builds a 400-class error. Allow-listed benign messages are
// tagged expected and kept out of the error log, but still returned.
func (t *RESTTransport) validationError(msg string, statusCode int, body []byte, method, url string, duration time.Duration) error {
	if msg == "" {
		msg = "invalid request parameters or format"
	}

	expected := types.IsExpectedValidationMessage(msg)
	if expected {
		if t.logger != nil {
			t.logger.Debug("expected validation", "method", method, "url", url, "message", msg)
		}
	} else {
		t.recordAPIError(method, url, statusCode, msg, duration)
		if t.logger != nil {
			t.logger.Warn("validation error", "method", method, "url", url, "status", statusCode, "message", msg)
		}
	}

	return &types.Error{
		Code:                 "VALIDATION_ERROR",
		Message:              msg,
		StatusCode:           statusCode,
		URL:                  url,
		RawBody:              string(body),
		IsValidation:         true,
		IsExpectedValidation: expected,
	}
}

func (t *RESTTransport) recordAPIError(method, url string, statusCode int, msg string, duration time.Duration) {
	t.diagnostics.API.Append(diag.Entry{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Message:    msg,
		Duration:   duration.String(),
	})
}

// httpStatusDescription returns a human-readable description for common
// 5xx status codes, including the Cloudflare-specific ones the hosting
// provider emits.
func httpStatusDescription(statusCode int) string {
	descriptions := map[int]string{
		500: "Internal Server Error",
		501: "Not Implemented",
		502: "Bad Gateway",
		503: "Service Unavailable",
		504: "Gateway Timeout",
		521: "Web Server Is Down",
		522: "Connection Timed Out",
		523: "Origin Is Unreachable",
		525: "SSL Handshake Failed",
	}
	return descriptions[statusCode]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
