// Package models contains data types for the BillMate client.
package models

// AccountMembership is one of the accounts an identity belongs to.
// Exactly one membership is expected to carry IsActive=true, marking the
// current tenant context; the server owns that invariant.
type AccountMembership struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// Identity represents the authenticated user as returned by /auth/me.
type Identity struct {
	ID          string              `json:"id"`
	Firstname   string              `json:"firstname"`
	Lastname    string              `json:"lastname"`
	Email       string              `json:"email"`
	Roles       []string            `json:"roles"`
	Modules     []string            `json:"modules"`
	Permissions []string            `json:"permissions"`
	Accounts    []AccountMembership `json:"accounts"`
}

// ActiveAccount returns the membership marked as the current tenant
// context. The boolean is false when no membership is active; callers must
// check it rather than assume the invariant holds.
func (i *Identity) ActiveAccount() (AccountMembership, bool) {
	if i == nil {
		return AccountMembership{}, false
	}
	for _, m := range i.Accounts {
		if m.IsActive {
			return m, true
		}
	}
	return AccountMembership{}, false
}

// DisplayName returns "Firstname Lastname", falling back to the email
// address when no name is set.
func (i *Identity) DisplayName() string {
	if i == nil {
		return ""
	}
	switch {
	case i.Firstname != "" && i.Lastname != "":
		return i.Firstname + " " + i.Lastname
	case i.Firstname != "":
		return i.Firstname
	case i.Lastname != "":
		return i.Lastname
	}
	return i.Email
}

// GuestAccess is the anonymous capability set returned by /auth/guest,
// used before sign-in completes. Mutually exclusive with Identity in
// normal operation.
type GuestAccess struct {
	Modules     []string `json:"modules"`
	Permissions []string `json:"permissions"`
}
