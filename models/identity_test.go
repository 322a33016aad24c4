package models

import "testing"

func TestIdentity_ActiveAccount(t *testing.T) {
	tests := []struct {
		name     string
		identity *Identity
		wantID   string
		wantOK   bool
	}{
		{
			name: "single active membership",
			identity: &Identity{Accounts: []AccountMembership{
				{ID: "a1", IsActive: false},
				{ID: "a2", IsActive: true},
			}},
			wantID: "a2",
			wantOK: true,
		},
		{
			name: "no active membership",
			identity: &Identity{Accounts: []AccountMembership{
				{ID: "a1"}, {ID: "a2"},
			}},
			wantOK: false,
		},
		{
			name:     "no memberships at all",
			identity: &Identity{},
			wantOK:   false,
		},
		{
			name:   "nil identity",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.identity.ActiveAccount()
			if ok != tt.wantOK {
				t.Fatalf("ActiveAccount() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("ActiveAccount() id = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

func TestIdentity_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		identity *Identity
		want     string
	}{
		{"full name", &Identity{Firstname: "Ada", Lastname: "Lovelace"}, "Ada Lovelace"},
		{"first only", &Identity{Firstname: "Ada"}, "Ada"},
		{"email fallback", &Identity{Email: "ada@example.com"}, "ada@example.com"},
		{"nil identity", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
