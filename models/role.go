package models

import (
	"net/url"
	"time"
)

// Role is a named permission bundle, either global (AccountID empty) or
// scoped to a single account.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AccountID   string    `json:"accountId,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsGlobal reports whether the role applies across all accounts.
func (r Role) IsGlobal() bool {
	return r.AccountID == ""
}

// RoleFilter holds the query parameters of the account role list.
type RoleFilter struct {
	Page     int
	Limit    int
	Search   string
	IsActive *bool
	OrderBy  string
}

// Values normalizes the filter to query parameters, stripping zero values.
func (f RoleFilter) Values() url.Values {
	v := url.Values{}
	addPagination(v, f.Page, f.Limit)
	addString(v, "search", f.Search)
	addBoolPtr(v, "isActive", f.IsActive)
	addString(v, "orderBy", f.OrderBy)
	return v
}
