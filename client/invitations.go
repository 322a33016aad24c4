package client

import (
	"context"
	"net/http"

	"github.com/billmate/billmate-go/models"
)

// InviteUser creates an invitation for an email address to join the
// current account scope.
func (a *Adapter) InviteUser(ctx context.Context, create models.InvitationCreate) (*models.Invitation, error) {
	if err := create.Validate(); err != nil {
		return nil, err
	}

	var invitation models.Invitation
	err := a.doJSON(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/invitations",
		body:        create,
		expectCodes: []int{http.StatusOK, http.StatusCreated},
	}, &invitation)
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// ListInvitations returns the invitations visible to the current session.
func (a *Adapter) ListInvitations(ctx context.Context) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := a.doJSON(ctx, requestConfig{
		method: http.MethodGet,
		path:   "/invitations",
	}, &invitations)
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// AcceptInvitation redeems an invitation token, creating the invited
// user's credentials.
func (a *Adapter) AcceptInvitation(ctx context.Context, accept models.InvitationAccept) error {
	if err := accept.Validate(); err != nil {
		return err
	}

	return a.doNoContent(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/invitations/accept",
		body:        accept,
		expectCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNoContent},
	})
}
