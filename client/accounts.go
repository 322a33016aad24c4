package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/billmate/billmate-go/models"
)

// GetAccount retrieves an account with its overview counters.
func (a *Adapter) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	if accountID == "" {
		return nil, &ValidationError{Field: "accountID", Message: "cannot be empty"}
	}

	var account models.Account
	err := a.doJSON(ctx, requestConfig{
		method:     http.MethodGet,
		path:       "/accounts/%s",
		pathParams: []string{accountID},
	}, &account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAccountEntities returns one page of the account's entities.
func (a *Adapter) ListAccountEntities(ctx context.Context, accountID string, filter models.EntityFilter) (*models.Page[models.Entity], error) {
	if accountID == "" {
		return nil, &ValidationError{Field: "accountID", Message: "cannot be empty"}
	}

	var page models.Page[models.Entity]
	err := a.doJSON(ctx, requestConfig{
		method:     http.MethodGet,
		path:       "/accounts/%s/entities",
		pathParams: []string{accountID},
		query:      filter.Values(),
	}, &page)
	if err != nil {
		return nil, fmt.Errorf("list account entities: %w", err)
	}
	return &page, nil
}

// ListAccountRoles returns one page of the account's roles, global roles
// included.
func (a *Adapter) ListAccountRoles(ctx context.Context, accountID string, filter models.RoleFilter) (*models.Page[models.Role], error) {
	if accountID == "" {
		return nil, &ValidationError{Field: "accountID", Message: "cannot be empty"}
	}

	var page models.Page[models.Role]
	err := a.doJSON(ctx, requestConfig{
		method:     http.MethodGet,
		path:       "/accounts/%s/roles",
		pathParams: []string{accountID},
		query:      filter.Values(),
	}, &page)
	if err != nil {
		return nil, fmt.Errorf("list account roles: %w", err)
	}
	return &page, nil
}

// ListAccountUsers returns one page of the account's memberships.
func (a *Adapter) ListAccountUsers(ctx context.Context, accountID string, filter models.UserFilter) (*models.Page[models.AccountUser], error) {
	if accountID == "" {
		return nil, &ValidationError{Field: "accountID", Message: "cannot be empty"}
	}

	var page models.Page[models.AccountUser]
	err := a.doJSON(ctx, requestConfig{
		method:     http.MethodGet,
		path:       "/accounts/%s/users",
		pathParams: []string{accountID},
		query:      filter.Values(),
	}, &page)
	if err != nil {
		return nil, fmt.Errorf("list account users: %w", err)
	}
	return &page, nil
}

// IterateAccountEntities returns an iterator walking every page of the
// account's entities matching the filter.
func (a *Adapter) IterateAccountEntities(accountID string, filter models.EntityFilter) *Iterator[models.Entity] {
	return NewIterator(func(ctx context.Context, page int) (*models.Page[models.Entity], error) {
		f := filter
		f.Page = page
		return a.ListAccountEntities(ctx, accountID, f)
	})
}

// IterateAccountUsers returns an iterator walking every page of the
// account's memberships matching the filter.
func (a *Adapter) IterateAccountUsers(accountID string, filter models.UserFilter) *Iterator[models.AccountUser] {
	return NewIterator(func(ctx context.Context, page int) (*models.Page[models.AccountUser], error) {
		f := filter
		f.Page = page
		return a.ListAccountUsers(ctx, accountID, f)
	})
}
