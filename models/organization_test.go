package models

import (
	"encoding/json"
	"testing"
)

func TestOrganizationType_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    OrganizationType
		wantErr bool
	}{
		{"company", `"COMPANY"`, OrganizationTypeCompany, false},
		{"association", `"ASSOCIATION"`, OrganizationTypeAssociation, false},
		{"community", `"COMMUNITY"`, OrganizationTypeCommunity, false},
		{"outside the set", `"NGO"`, "", true},
		{"lowercase rejected", `"company"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v OrganizationType
			err := json.Unmarshal([]byte(tt.raw), &v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err == nil && v != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.raw, v, tt.want)
			}
		})
	}
}

func TestOrganizationCreate_Validate(t *testing.T) {
	valid := OrganizationCreate{Name: "Acme", Type: OrganizationTypeCompany, AccountID: "a1"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid payload failed: %v", err)
	}

	assertFieldErrors(t, OrganizationCreate{}.Validate(), []string{"name", "type", "accountId"})
}

func TestEntityWithOrganizationCreate_Validate_InheritsAccountID(t *testing.T) {
	create := EntityWithOrganizationCreate{
		Name:      "Acme Paris",
		AccountID: "a1",
		Organization: OrganizationCreate{
			Name: "Acme",
			Type: OrganizationTypeCompany,
			// AccountID intentionally unset: inherited from the entity
		},
	}
	if err := create.Validate(); err != nil {
		t.Fatalf("payload with inherited account id failed: %v", err)
	}
}
