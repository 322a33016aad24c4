package client

import (
	"context"
	"net/http"

	"github.com/billmate/billmate-go/models"
)

// CreateOrganization creates a standalone organization record.
func (a *Adapter) CreateOrganization(ctx context.Context, create models.OrganizationCreate) (*models.Organization, error) {
	if err := create.Validate(); err != nil {
		return nil, err
	}

	var org models.Organization
	err := a.doJSON(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/organizations",
		body:        create,
		expectCodes: []int{http.StatusOK, http.StatusCreated},
	}, &org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateOrganization applies a partial update to an organization.
func (a *Adapter) UpdateOrganization(ctx context.Context, orgID string, update models.OrganizationUpdate) (*models.Organization, error) {
	if orgID == "" {
		return nil, &ValidationError{Field: "orgID", Message: "cannot be empty"}
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var org models.Organization
	err := a.doJSON(ctx, requestConfig{
		method:     http.MethodPatch,
		path:       "/organizations/%s",
		pathParams: []string{orgID},
		body:       update,
	}, &org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}
