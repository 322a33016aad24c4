package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// InvitationStatus tracks the lifecycle of an invitation.
type InvitationStatus string

const (
	InvitationStatusSent     InvitationStatus = "SENT"
	InvitationStatusExpired  InvitationStatus = "EXPIRED"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
)

// Valid reports whether s is a member of the closed set.
func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationStatusSent, InvitationStatusExpired, InvitationStatusAccepted:
		return true
	}
	return false
}

// UnmarshalJSON decodes a status literal. Older servers emitted "PENDING"
// for freshly created invitations; it is normalized to SENT. Any other
// literal outside the declared set is a decode error.
func (s *InvitationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "PENDING" {
		*s = InvitationStatusSent
		return nil
	}
	v := InvitationStatus(raw)
	if !v.Valid() {
		return fmt.Errorf("unknown invitation status %q", raw)
	}
	*s = v
	return nil
}

// Invitation tracks an invited email and its target accounts, entities
// and roles.
type Invitation struct {
	ID         string           `json:"id"`
	Email      string           `json:"email"`
	Firstname  string           `json:"firstname,omitempty"`
	Lastname   string           `json:"lastname,omitempty"`
	InviterID  string           `json:"inviterId"`
	Status     InvitationStatus `json:"status"`
	AccountIDs []string         `json:"accountIds"`
	EntityIDs  []string         `json:"entityIds"`
	RoleIDs    []string         `json:"roleIds"`
	ExpiresAt  time.Time        `json:"expiresAt"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// InvitationCreate is the payload for POST /invitations. An invitee must
// be attached somewhere: either to at least one entity, or directly to
// the account via IsDirectlyLinked.
type InvitationCreate struct {
	Email            string   `json:"email"`
	Firstname        string   `json:"firstname,omitempty"`
	Lastname         string   `json:"lastname,omitempty"`
	RoleIDs          []string `json:"roleIds,omitempty"`
	AccountIDs       []string `json:"accountIds,omitempty"`
	EntityIDs        []string `json:"entityIds,omitempty"`
	IsDirectlyLinked bool     `json:"isDirectlyLinked,omitempty"`
	Locale           string   `json:"locale,omitempty"`
}

// Validate checks the payload before it is sent.
func (c InvitationCreate) Validate() error {
	var linkErr error
	if len(c.EntityIDs) == 0 && !c.IsDirectlyLinked {
		linkErr = fieldError("entityIds", "select at least one entity or link the user directly to the account")
	}
	return joinFieldErrors(
		validateEmail("email", c.Email),
		linkErr,
	)
}

// InvitationAccept is the payload for POST /invitations/accept.
type InvitationAccept struct {
	InvitationToken string `json:"invitationToken"`
	Password        string `json:"password"`
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	Locale          string `json:"locale,omitempty"`
}

// Validate checks the payload before it is sent.
func (a InvitationAccept) Validate() error {
	var tokenErr, firstErr, lastErr error
	if a.InvitationToken == "" {
		tokenErr = fieldError("invitationToken", "is required")
	}
	if a.Firstname == "" {
		firstErr = fieldError("firstname", "is required")
	}
	if a.Lastname == "" {
		lastErr = fieldError("lastname", "is required")
	}
	return joinFieldErrors(
		tokenErr,
		validatePassword("password", a.Password),
		firstErr,
		lastErr,
	)
}
