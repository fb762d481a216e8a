package hrms

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/hrbuddy/hrms-go/internal/auth"
	"github.com/hrbuddy/hrms-go/internal/diag"
	"github.com/hrbuddy/hrms-go/internal/transport"
	internalTypes "github.com/hrbuddy/hrms-go/internal/types"
)

const (
	// DefaultBaseURL is the default HRMS API origin (local development)
	DefaultBaseURL = internalTypes.DefaultBaseURL

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout

	// UserAgent is the user agent string
	UserAgent = internalTypes.UserAgent
)

// Client is the main HRMS API client
type Client struct {
	// Service interfaces
	Auth            AuthService
	Employees       EmployeeService
	Attendance      AttendanceService
	Leaves          LeaveService
	Regularizations RegularizationService
	Tickets         TicketService
	TaskReports     TaskReportService
	Holidays        HolidayService
	Departments     DepartmentService
	Settings        SettingsService
	Documents       DocumentService

	// Internal fields
	baseURL     string
	httpClient  *http.Client
	transport   Transport
	tokens      auth.TokenStore
	cache       *Cache
	diagnostics *diag.Diagnostics
	options     *ClientOptions
	session     *Session
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token provides a direct authentication token
	Token string

	// TokenFile enables file-backed token persistence at the given path
	TokenFile string

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior for transport failures
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for client-side rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// Cache overrides the client's resource cache (useful for sharing one
	// cache across clients, or isolating caches in tests)
	Cache *Cache

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport issues classified HTTP requests against the HRMS API
type Transport interface {
	Do(ctx context.Context, method, path string, body, result interface{}) error
	Ping(ctx context.Context) error
	SetAuth(token string)
	ClearAuth()
}

// NewClient creates a new HRMS client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}
		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	// Token storage: file-backed when a path is configured, in-memory
	// otherwise.
	var tokens auth.TokenStore
	if opts.TokenFile != "" {
		store, err := auth.NewFileStore(opts.TokenFile)
		if err != nil {
			return nil, err
		}
		tokens = store
	} else {
		tokens = auth.NewMemoryStore()
	}

	diagnostics := diag.New()

	trans := transport.NewRESTTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
		Tokens:      tokens,
		Diagnostics: diagnostics,
	})

	cache := opts.Cache
	if cache == nil {
		cache = NewCache()
	}

	c := &Client{
		baseURL:     opts.BaseURL,
		httpClient:  opts.HTTPClient,
		transport:   trans,
		tokens:      tokens,
		cache:       cache,
		diagnostics: diagnostics,
		options:     opts,
	}

	// Direct token takes precedence over a persisted one.
	if opts.Token != "" {
		c.SetToken(opts.Token)
	} else if token := tokens.Token(); token != "" {
		c.session = sessionFromInternal(auth.SessionFromToken(token))
	}

	c.initServices()

	return c, nil
}

// NewClientWithToken creates a client with an auth token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		Token: token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Auth = &authService{client: c}
	c.Employees = &employeeService{client: c}
	c.Attendance = &attendanceService{client: c}
	c.Leaves = &leaveService{client: c}
	c.Regularizations = &regularizationService{client: c}
	c.Tickets = &ticketService{client: c}
	c.TaskReports = &taskReportService{client: c}
	c.Holidays = &holidayService{client: c}
	c.Departments = &departmentService{client: c}
	c.Settings = &settingsService{client: c}
	c.Documents = &documentService{client: c}
}

// SetToken sets the authentication token
func (c *Client) SetToken(token string) {
	c.transport.SetAuth(token)
	c.session = sessionFromInternal(auth.SessionFromToken(token))
}

// GetSession returns the current session
func (c *Client) GetSession() *Session {
	return c.session
}

// Cache returns the client's resource cache
func (c *Client) Cache() *Cache {
	return c.cache
}

// Diagnostics returns the bounded in-memory error buffers kept for support
// debugging.
func (c *Client) Diagnostics() *diag.Diagnostics {
	return c.diagnostics
}

// Ping probes the API health endpoint with a bounded timeout
func (c *Client) Ping(ctx context.Context) error {
	return c.transport.Ping(ctx)
}

// do executes one API request through the transport, applying rate limiting,
// hooks, and Sentry capture.
func (c *Client) do(ctx context.Context, operation, method, path string, body, result interface{}) error {
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			return err
		}
	}

	start := time.Now()
	err := c.transport.Do(ctx, method, path, body, result)
	duration := time.Since(start)

	// Capture failures in Sentry; expected validations are routine
	// business-rule rejections and stay out.
	if err != nil && !IsExpectedValidation(err) {
		captureError(ctx, err, operation, method, path, duration)
	}

	return err
}

// captureError reports a request failure to Sentry with operation context.
func captureError(ctx context.Context, err error, operation, method, path string, duration time.Duration) {
	scopeFn := func(scope *sentry.Scope) {
		scope.SetTag("api.operation", operation)
		scope.SetContext("request", map[string]interface{}{
			"method":   method,
			"path":     path,
			"duration": duration.String(),
		})
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scopeFn(scope)
			hub.CaptureException(err)
		})
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scopeFn(scope)
		sentry.CaptureException(err)
	})
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}

// sessionFromInternal converts internal session data to the public type.
func sessionFromInternal(s *internalTypes.Session) *Session {
	if s == nil {
		return nil
	}
	return &Session{
		Token:     s.Token,
		UserID:    s.UserID,
		Email:     s.Email,
		Role:      s.Role,
		ExpiresAt: s.ExpiresAt,
	}
}
