// Package client provides a self-contained HTTP client for the BillMate
// administration API.
package client

import (
	"context"

	"github.com/billmate/billmate-go/models"
)

// Client defines the interface for interacting with the BillMate API.
type Client interface {
	// Auth (POST /auth/signup, /auth/signin, /auth/signout, GET /auth/me, /auth/guest)
	SignUp(ctx context.Context, req models.SignUpRequest) error
	SignIn(ctx context.Context, req models.SignInRequest) (*models.Identity, error)
	SignOut(ctx context.Context, userID string) error
	Me(ctx context.Context) (*models.Identity, error)
	GuestAccess(ctx context.Context) (*models.GuestAccess, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// Accounts (GET /accounts/{id} and its paginated sub-collections)
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	ListAccountEntities(ctx context.Context, accountID string, filter models.EntityFilter) (*models.Page[models.Entity], error)
	ListAccountRoles(ctx context.Context, accountID string, filter models.RoleFilter) (*models.Page[models.Role], error)
	ListAccountUsers(ctx context.Context, accountID string, filter models.UserFilter) (*models.Page[models.AccountUser], error)

	// Organizations (POST /organizations, PATCH /organizations/{id})
	CreateOrganization(ctx context.Context, create models.OrganizationCreate) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, orgID string, update models.OrganizationUpdate) (*models.Organization, error)

	// Entities (POST /entities)
	CreateEntity(ctx context.Context, create models.EntityCreate) (*models.Entity, error)
	CreateEntityWithOrganization(ctx context.Context, create models.EntityWithOrganizationCreate) (*models.Entity, error)

	// Invitations (GET/POST /invitations, POST /invitations/accept)
	InviteUser(ctx context.Context, create models.InvitationCreate) (*models.Invitation, error)
	ListInvitations(ctx context.Context) ([]models.Invitation, error)
	AcceptInvitation(ctx context.Context, accept models.InvitationAccept) error
}
