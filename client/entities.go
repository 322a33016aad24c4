package client

import (
	"context"
	"net/http"

	"github.com/billmate/billmate-go/models"
)

// CreateEntity creates a business entity referencing an existing
// organization.
func (a *Adapter) CreateEntity(ctx context.Context, create models.EntityCreate) (*models.Entity, error) {
	if err := create.Validate(); err != nil {
		return nil, err
	}

	var entity models.Entity
	err := a.doJSON(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/entities",
		body:        create,
		expectCodes: []int{http.StatusOK, http.StatusCreated},
	}, &entity)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// CreateEntityWithOrganization creates an entity together with its owning
// organization: the organization is created first, then the entity
// referencing it.
//
// Known limitation: the two calls are not transactional. When the entity
// call fails after the organization was created, the organization remains
// on the server; the API exposes no delete endpoint the client could use
// to compensate. The returned error wraps the entity failure.
func (a *Adapter) CreateEntityWithOrganization(ctx context.Context, create models.EntityWithOrganizationCreate) (*models.Entity, error) {
	if err := create.Validate(); err != nil {
		return nil, err
	}

	orgCreate := create.Organization
	if orgCreate.AccountID == "" {
		orgCreate.AccountID = create.AccountID
	}

	org, err := a.CreateOrganization(ctx, orgCreate)
	if err != nil {
		return nil, err
	}

	return a.CreateEntity(ctx, models.EntityCreate{
		Name:           create.Name,
		Description:    create.Description,
		OrganizationID: org.ID,
		AccountID:      create.AccountID,
	})
}
