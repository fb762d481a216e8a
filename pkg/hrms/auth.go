package hrms

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/diag"
	"github.com/hrbuddy/hrms-go/internal/endpoint"
	internalTypes "github.com/hrbuddy/hrms-go/internal/types"
)

// authService implements the AuthService interface
type authService struct {
	client *Client
}

// Login authenticates with email and password, stores the bearer token for
// later requests, and returns the resulting session.
func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	path, err := endpoint.Resolve(endpoint.AuthLogin)
	if err != nil {
		return nil, err
	}

	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result struct {
		Token string `json:"token"`
		User  *struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}

	start := time.Now()
	if err := s.client.do(ctx, string(endpoint.AuthLogin), http.MethodPost, path, body, &result); err != nil {
		s.recordLoginFailure(email, err, time.Since(start))
		// Keep the classified error in the chain so callers can still read
		// its status code and flags.
		return nil, fmt.Errorf("%w: %w", internalTypes.ErrLoginFailed, err)
	}

	if result.Token == "" {
		err := errors.Wrap(internalTypes.ErrLoginFailed, "login response missing token")
		s.recordLoginFailure(email, err, time.Since(start))
		return nil, err
	}

	if err := s.client.tokens.Set(result.Token); err != nil {
		// Persistence failures don't invalidate the login itself.
		if s.client.options.Logger != nil {
			s.client.options.Logger.Warn("failed to persist auth token", "error", err)
		}
	}
	s.client.SetToken(result.Token)

	// Server-supplied identity wins over claims decoded from the token.
	if result.User != nil && s.client.session != nil {
		if result.User.ID != "" {
			s.client.session.UserID = result.User.ID
		}
		if result.User.Email != "" {
			s.client.session.Email = result.User.Email
		}
		if result.User.Role != "" {
			s.client.session.Role = result.User.Role
		}
	}

	return s.client.session, nil
}

// Logout invalidates the server session and clears the stored token. The
// local token is cleared even when the server call fails.
func (s *authService) Logout(ctx context.Context) error {
	path, err := endpoint.Resolve(endpoint.AuthLogout)
	if err != nil {
		return err
	}

	reqErr := s.client.do(ctx, string(endpoint.AuthLogout), http.MethodPost, path, nil, nil)

	s.client.transport.ClearAuth()
	s.client.session = nil
	if err := s.client.tokens.Clear(); err != nil && s.client.options.Logger != nil {
		s.client.options.Logger.Warn("failed to clear stored token", "error", err)
	}

	if reqErr != nil {
		return errors.Wrap(reqErr, "logout request failed")
	}
	return nil
}

// ForgotPassword starts the password-reset workflow
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return errors.New("email is required")
	}

	path, err := endpoint.Resolve(endpoint.AuthForgotPassword)
	if err != nil {
		return err
	}

	body := map[string]string{"email": email}

	if err := s.client.do(ctx, string(endpoint.AuthForgotPassword), http.MethodPost, path, body, nil); err != nil {
		return errors.Wrap(err, "failed to request password reset")
	}
	return nil
}

// ResetPassword completes the password-reset workflow
func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return errors.New("reset token and new password are required")
	}

	path, err := endpoint.Resolve(endpoint.AuthResetPassword)
	if err != nil {
		return err
	}

	body := map[string]string{
		"token":    resetToken,
		"password": newPassword,
	}

	if err := s.client.do(ctx, string(endpoint.AuthResetPassword), http.MethodPost, path, body, nil); err != nil {
		return errors.Wrap(err, "failed to reset password")
	}
	return nil
}

// Session returns the current session, or ErrNotAuthenticated when there is
// no stored token.
func (s *authService) Session() (*Session, error) {
	if s.client.session == nil {
		return nil, internalTypes.ErrNotAuthenticated
	}
	if !s.client.session.ExpiresAt.IsZero() && time.Now().After(s.client.session.ExpiresAt) {
		return nil, internalTypes.ErrSessionExpired
	}
	return s.client.session, nil
}

// recordLoginFailure appends the failure to the bounded login buffer so it
// can be inspected later without scraping logs.
func (s *authService) recordLoginFailure(email string, err error, duration time.Duration) {
	entry := diag.Entry{
		Time:      time.Now(),
		Operation: string(endpoint.AuthLogin),
		Method:    http.MethodPost,
		URL:       endpoint.MustResolve(endpoint.AuthLogin),
		Message:   err.Error(),
		Duration:  duration.String(),
	}

	var apiErr *internalTypes.Error
	if errors.As(err, &apiErr) {
		entry.StatusCode = apiErr.StatusCode
	}

	s.client.diagnostics.Login.Append(entry)

	if s.client.options.Logger != nil {
		s.client.options.Logger.Warn("login failed", "email", email, "error", err)
	}
}
