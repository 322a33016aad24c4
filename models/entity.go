package models

import (
	"net/url"
	"time"
)

// Entity is a business unit belonging to an Account, optionally linked to
// one Organization.
type Entity struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	AccountID      string        `json:"accountId"`
	OrganizationID string        `json:"organizationId,omitempty"`
	Organization   *Organization `json:"organization,omitempty"`
	IsActive       bool          `json:"isActive"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// EntityCreate is the payload for POST /entities.
type EntityCreate struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	OrganizationID string `json:"organizationId"`
	AccountID      string `json:"accountId"`
}

// Validate checks the payload before it is sent.
func (c EntityCreate) Validate() error {
	var nameErr, orgErr, accountErr error
	if c.Name == "" {
		nameErr = fieldError("name", "is required")
	}
	if c.OrganizationID == "" {
		orgErr = fieldError("organizationId", "is required")
	}
	if c.AccountID == "" {
		accountErr = fieldError("accountId", "is required")
	}
	return joinFieldErrors(nameErr, orgErr, accountErr)
}

// EntityWithOrganizationCreate creates an entity together with its owning
// organization in one user-facing action. The two underlying calls are
// sequential, not transactional; see Adapter.CreateEntityWithOrganization.
type EntityWithOrganizationCreate struct {
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	AccountID    string             `json:"accountId"`
	Organization OrganizationCreate `json:"organization"`
}

// Validate checks the payload before it is sent.
func (c EntityWithOrganizationCreate) Validate() error {
	var nameErr, accountErr error
	if c.Name == "" {
		nameErr = fieldError("name", "is required")
	}
	if c.AccountID == "" {
		accountErr = fieldError("accountId", "is required")
	}
	org := c.Organization
	if org.AccountID == "" {
		org.AccountID = c.AccountID
	}
	return joinFieldErrors(nameErr, accountErr, org.Validate())
}

// EntityFilter holds the query parameters of the account entity list.
// The zero value lists the first page with the default page size.
type EntityFilter struct {
	Page                 int
	Limit                int
	Search               string
	UserIDs              []string
	IsActive             *bool
	IncludeInactiveUsers bool
	OrderBy              string
}

// Values normalizes the filter to query parameters, stripping zero values
// so equivalent filters encode to the same string.
func (f EntityFilter) Values() url.Values {
	v := url.Values{}
	addPagination(v, f.Page, f.Limit)
	addString(v, "search", f.Search)
	addStrings(v, "userIds", f.UserIDs)
	addBoolPtr(v, "isActive", f.IsActive)
	addBool(v, "includeInactiveUsers", f.IncludeInactiveUsers)
	addString(v, "orderBy", f.OrderBy)
	return v
}
