package hrms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hrbuddy/hrms-go/internal/auth"
	"github.com/hrbuddy/hrms-go/internal/diag"
)

// MockTransport is a mock implementation of the Transport interface
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Do(ctx context.Context, method, path string, body, result interface{}) error {
	args := m.Called(ctx, method, path, body, result)

	// If mock provides result data, unmarshal it
	if args.Get(0) != nil && result != nil {
		resultJSON := args.Get(0).(string)
		if err := json.Unmarshal([]byte(resultJSON), result); err != nil {
			return err
		}
	}

	return args.Error(1)
}

func (m *MockTransport) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTransport) SetAuth(token string) {
	m.Called(token)
}

func (m *MockTransport) ClearAuth() {
	m.Called()
}

// newMockClient builds a client wired to a mock transport, bypassing
// NewClient so no real HTTP machinery is constructed.
func newMockClient(transport *MockTransport) *Client {
	c := &Client{
		baseURL:     "http://hrms.test",
		transport:   transport,
		tokens:      auth.NewMemoryStore(),
		cache:       NewCache(),
		diagnostics: diag.New(),
		options:     &ClientOptions{},
	}
	c.initServices()
	return c
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.NotNil(t, client.Auth)
	assert.NotNil(t, client.Employees)
	assert.NotNil(t, client.Attendance)
	assert.NotNil(t, client.Leaves)
	assert.NotNil(t, client.Regularizations)
	assert.NotNil(t, client.Tickets)
	assert.NotNil(t, client.TaskReports)
	assert.NotNil(t, client.Holidays)
	assert.NotNil(t, client.Departments)
	assert.NotNil(t, client.Settings)
	assert.NotNil(t, client.Documents)
	assert.NotNil(t, client.Cache())
	assert.NotNil(t, client.Diagnostics())
	assert.Nil(t, client.GetSession())
}

func TestNewClientWithToken(t *testing.T) {
	client, err := NewClientWithToken("opaque-token")
	require.NoError(t, err)

	session := client.GetSession()
	require.NotNil(t, session)
	assert.Equal(t, "opaque-token", session.Token)
	assert.False(t, session.ExpiresAt.IsZero())
}

// A successful login must make every subsequent request carry the returned
// bearer token.
func TestLoginThenAuthenticatedRequest(t *testing.T) {
	var profileAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a stale token")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token": "t1", "user": {"id": "u1", "email": "priya@example.com", "role": "admin"}}`))
		case "/api/employees/profile":
			profileAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"employee": {"id": "u1", "name": "Priya Sharma", "email": "priya@example.com"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := NewClient(&ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)

	ctx := context.Background()
	session, err := client.Auth.Login(ctx, "priya@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "t1", session.Token)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "admin", session.Role)

	profile, err := client.Employees.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", profile.Name)
	assert.Equal(t, "Bearer t1", profileAuth)
}

func TestClientPing(t *testing.T) {
	mockTransport := new(MockTransport)
	mockTransport.On("Ping", mock.Anything).Return(nil)

	client := newMockClient(mockTransport)
	require.NoError(t, client.Ping(context.Background()))

	mockTransport.AssertExpectations(t)
}

type blockedLimiter struct{}

func (blockedLimiter) Wait(ctx context.Context) error {
	return context.Canceled
}

func TestRateLimiterBlocksRequest(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)
	client.options.RateLimiter = blockedLimiter{}

	_, err := client.Employees.Profile(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// The transport must never have been reached.
	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
