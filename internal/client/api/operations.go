package api

import (
	"context"
	"fmt"
	"net/http"
)

// Login authenticates with email and password. On success the returned
// token is persisted to the session store before the response is handed
// back.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", Credentials{Email: email, Password: password}, &out,
		"Login failed. Please check your credentials.")
	if err != nil {
		return nil, err
	}

	if out.Token != "" {
		if err := c.session.SetCredential(ctx, out.Token); err != nil {
			return nil, fmt.Errorf("failed to store credential: %w", err)
		}
	}

	return &out, nil
}

// Register creates a new account. The response carries either a token
// (stored like a login) or a "verify your email" acknowledgment without one.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &out,
		"Registration failed. Please try again.")
	if err != nil {
		return nil, err
	}

	if out.Token != "" {
		if err := c.session.SetCredential(ctx, out.Token); err != nil {
			return nil, fmt.Errorf("failed to store credential: %w", err)
		}
	}

	return &out, nil
}

// RefreshToken exchanges the current credential for a fresh one and persists
// it.
func (c *Client) RefreshToken(ctx context.Context) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, &out,
		"Could not refresh your session.")
	if err != nil {
		return nil, err
	}

	if out.Token != "" {
		if err := c.session.SetCredential(ctx, out.Token); err != nil {
			return nil, fmt.Errorf("failed to store credential: %w", err)
		}
	}

	return &out, nil
}

// Logout tells the server to end the session. The local credential is
// cleared regardless of the call outcome: the user-visible contract "you are
// logged out" must hold even when the network is down.
func (c *Client) Logout(ctx context.Context) error {
	defer func() {
		if err := c.session.ClearCredential(ctx); err != nil {
			c.log.Error(ctx, "failed to clear credential on logout", "error", err)
		}
	}()

	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, "Logout failed.")
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var out Profile
	err := c.do(ctx, http.MethodGet, "/user/profile", nil, &out,
		"Could not load your profile.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyEmail confirms an address with the verification token from the
// e-mail link.
func (c *Client) VerifyEmail(ctx context.Context, token string) (*Acknowledgment, error) {
	body := struct {
		Token string `json:"token"`
	}{Token: token}

	var out Acknowledgment
	err := c.do(ctx, http.MethodPost, "/auth/verify-email", body, &out,
		"Email verification failed.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset asks the server to send a reset token to email.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*Acknowledgment, error) {
	body := struct {
		Email string `json:"email"`
	}{Email: email}

	var out Acknowledgment
	err := c.do(ctx, http.MethodPost, "/auth/password-reset", body, &out,
		"Could not request a password reset.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*Acknowledgment, error) {
	body := struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}{Token: token, Password: newPassword}

	var out Acknowledgment
	err := c.do(ctx, http.MethodPost, "/auth/password-reset/confirm", body, &out,
		"Password reset failed.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
