package client

import (
	"context"
	"net/http"

	"github.com/billmate/billmate-go/models"
)

// SignUp registers a new user account.
func (a *Adapter) SignUp(ctx context.Context, req models.SignUpRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return a.doNoContent(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/auth/signup",
		body:        req,
		expectCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNoContent},
	})
}

// SignIn authenticates a user. On success the server sets the session
// cookie on the shared jar and the authenticated identity is returned.
func (a *Adapter) SignIn(ctx context.Context, req models.SignInRequest) (*models.Identity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var identity models.Identity
	err := a.doJSON(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/auth/signin",
		body:        req,
		expectCodes: []int{http.StatusOK, http.StatusCreated},
	}, &identity)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// SignOut terminates the current session.
func (a *Adapter) SignOut(ctx context.Context, userID string) error {
	if userID == "" {
		return &ValidationError{Field: "userId", Message: "cannot be empty"}
	}

	return a.doNoContent(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/auth/signout",
		body:        map[string]any{"userId": userID},
		expectCodes: []int{http.StatusOK, http.StatusNoContent},
	})
}

// Me fetches the identity bound to the current session.
func (a *Adapter) Me(ctx context.Context) (*models.Identity, error) {
	var identity models.Identity
	err := a.doJSON(ctx, requestConfig{
		method: http.MethodGet,
		path:   "/auth/me",
	}, &identity)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// GuestAccess fetches the capability set available without authentication.
func (a *Adapter) GuestAccess(ctx context.Context) (*models.GuestAccess, error) {
	var guest models.GuestAccess
	err := a.doJSON(ctx, requestConfig{
		method: http.MethodGet,
		path:   "/auth/guest",
	}, &guest)
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// RequestPasswordReset asks the server to mail a reset token.
func (a *Adapter) RequestPasswordReset(ctx context.Context, email string) error {
	if err := models.ValidateEmail(email); err != nil {
		return err
	}

	return a.doNoContent(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/auth/request-password-reset",
		body:        map[string]any{"email": email},
		expectCodes: []int{http.StatusOK, http.StatusNoContent, http.StatusAccepted},
	})
}

// ResetPassword completes a password reset with a mailed token.
func (a *Adapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return a.doNoContent(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/auth/reset-password",
		body:        req,
		expectCodes: []int{http.StatusOK, http.StatusNoContent},
	})
}
