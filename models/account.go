package models

import (
	"net/url"
	"time"
)

// Account is a tenant container for users, entities and roles.
// The list fields are the most recent items embedded in the account
// response for the overview screen; full collections are served by the
// paginated list endpoints.
type Account struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive"`
	UsersCount    int       `json:"usersCount"`
	EntitiesCount int       `json:"entitiesCount"`
	RolesCount    int       `json:"rolesCount"`
	Entities      []Entity  `json:"entities,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AccountUser is a membership record joining a person to an account.
type AccountUser struct {
	ID               string    `json:"id"`
	Firstname        string    `json:"firstname"`
	Lastname         string    `json:"lastname"`
	Email            string    `json:"email"`
	Roles            []Role    `json:"roles"`
	Entities         []Entity  `json:"entities"`
	IsDirectlyLinked bool      `json:"isDirectlyLinked"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UserFilter holds the query parameters of the account user list.
type UserFilter struct {
	Page               int
	Limit              int
	Search             string
	RoleIDs            []string
	EntityIDs          []string
	IsActive           *bool
	OrderBy            string
	IncludeDirectUsers bool
}

// Values normalizes the filter to query parameters, stripping zero values.
func (f UserFilter) Values() url.Values {
	v := url.Values{}
	addPagination(v, f.Page, f.Limit)
	addString(v, "search", f.Search)
	addStrings(v, "roleIds", f.RoleIDs)
	addStrings(v, "entityIds", f.EntityIDs)
	addBoolPtr(v, "isActive", f.IsActive)
	addString(v, "orderBy", f.OrderBy)
	addBool(v, "includeDirectUsers", f.IncludeDirectUsers)
	return v
}
