package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrganizationType classifies an organization. The set is closed: decoding
// any other value is an error.
type OrganizationType string

const (
	OrganizationTypeCompany     OrganizationType = "COMPANY"
	OrganizationTypeAssociation OrganizationType = "ASSOCIATION"
	OrganizationTypeCommunity   OrganizationType = "COMMUNITY"
)

// Valid reports whether t is a member of the closed set.
func (t OrganizationType) Valid() bool {
	switch t {
	case OrganizationTypeCompany, OrganizationTypeAssociation, OrganizationTypeCommunity:
		return true
	}
	return false
}

// UnmarshalJSON rejects values outside the declared enum so a bad server
// payload surfaces as a decode error instead of an impossible state.
func (t *OrganizationType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := OrganizationType(s)
	if !v.Valid() {
		return fmt.Errorf("unknown organization type %q", s)
	}
	*t = v
	return nil
}

// Organization is a descriptive record created alongside an Entity.
type Organization struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        OrganizationType `json:"type"`
	Description string           `json:"description"`
	Website     string           `json:"website"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// OrganizationCreate is the payload for POST /organizations.
type OrganizationCreate struct {
	Name        string           `json:"name"`
	Type        OrganizationType `json:"type"`
	AccountID   string           `json:"accountId"`
	Description string           `json:"description,omitempty"`
	Website     string           `json:"website,omitempty"`
}

// Validate checks the payload before it is sent.
func (c OrganizationCreate) Validate() error {
	var nameErr, typeErr, accountErr error
	if c.Name == "" {
		nameErr = fieldError("name", "is required")
	}
	if !c.Type.Valid() {
		typeErr = fieldError("type", "must be one of COMPANY, ASSOCIATION, COMMUNITY")
	}
	if c.AccountID == "" {
		accountErr = fieldError("accountId", "is required")
	}
	return joinFieldErrors(nameErr, typeErr, accountErr)
}

// OrganizationUpdate is the payload for PATCH /organizations/{id}.
// Pointer fields distinguish "not set" from "set to empty".
type OrganizationUpdate struct {
	Name        *string           `json:"name,omitempty"`
	Type        *OrganizationType `json:"type,omitempty"`
	Description *string           `json:"description,omitempty"`
	Website     *string           `json:"website,omitempty"`
}

// Validate checks the payload before it is sent.
func (u OrganizationUpdate) Validate() error {
	var nameErr, typeErr error
	if u.Name != nil && *u.Name == "" {
		nameErr = fieldError("name", "cannot be empty")
	}
	if u.Type != nil && !u.Type.Valid() {
		typeErr = fieldError("type", "must be one of COMPANY, ASSOCIATION, COMMUNITY")
	}
	return joinFieldErrors(nameErr, typeErr)
}
