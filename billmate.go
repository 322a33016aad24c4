// Package billmate provides a Go SDK for the BillMate administration API:
// accounts, entities, organizations, users, roles and invitations in a
// multi-tenant setup.
//
// Basic usage:
//
//	svc, err := billmate.Open("https://billmate.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	identity, err := svc.SignIn(ctx, billmate.SignInRequest{
//	    Email:    "admin@example.com",
//	    Password: "secret123",
//	})
//
//	entities, err := svc.AccountEntities(ctx, accountID, billmate.EntityFilter{Search: "acme"})
//
// Reads are served from a keyed cache with per-operation staleness;
// mutations invalidate the entries they make stale. The raw, uncached
// API client lives in the client subpackage.
package billmate

import (
	"github.com/billmate/billmate-go/client"
	"github.com/billmate/billmate-go/models"
	"github.com/billmate/billmate-go/query"
)

// Re-export client types for convenient access
type (
	// Client is the raw API client interface.
	Client = client.Client

	// APIError represents an error from the BillMate API.
	APIError = client.APIError

	// ValidationError represents a client-side validation error.
	ValidationError = client.ValidationError
)

// Re-export model types for convenient access
type (
	// Identity is the authenticated user.
	Identity = models.Identity
	// GuestAccess is the anonymous capability set.
	GuestAccess = models.GuestAccess
	// Account is a tenant container.
	Account = models.Account
	// AccountUser is a membership record.
	AccountUser = models.AccountUser
	// Entity is a business unit under an account.
	Entity = models.Entity
	// Organization is the descriptive record owning an entity.
	Organization = models.Organization
	// Role is a named permission bundle.
	Role = models.Role
	// Invitation tracks an invited email.
	Invitation = models.Invitation

	// SignUpRequest is the sign-up payload.
	SignUpRequest = models.SignUpRequest
	// SignInRequest is the sign-in payload.
	SignInRequest = models.SignInRequest
	// ResetPasswordRequest is the password-reset payload.
	ResetPasswordRequest = models.ResetPasswordRequest
	// OrganizationCreate is the organization creation payload.
	OrganizationCreate = models.OrganizationCreate
	// OrganizationUpdate is the partial organization update payload.
	OrganizationUpdate = models.OrganizationUpdate
	// EntityCreate is the entity creation payload.
	EntityCreate = models.EntityCreate
	// EntityWithOrganizationCreate is the combined creation payload.
	EntityWithOrganizationCreate = models.EntityWithOrganizationCreate
	// InvitationCreate is the invite payload.
	InvitationCreate = models.InvitationCreate
	// InvitationAccept is the invitation acceptance payload.
	InvitationAccept = models.InvitationAccept

	// EntityFilter filters the entity list.
	EntityFilter = models.EntityFilter
	// UserFilter filters the user list.
	UserFilter = models.UserFilter
	// RoleFilter filters the role list.
	RoleFilter = models.RoleFilter
)

// Re-export list-view helpers
type (
	// Debouncer coalesces a burst of calls into one.
	Debouncer = query.Debouncer
	// ListState tracks page and debounced search text of a list view.
	ListState = query.ListState
)

// Sentinel errors re-exported from the client package.
var (
	ErrNotFound     = client.ErrNotFound
	ErrUnauthorized = client.ErrUnauthorized
	ErrForbidden    = client.ErrForbidden
	ErrInvalidInput = client.ErrInvalidInput
)
