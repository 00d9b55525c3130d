package cases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespondent(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		street    string
		city      string
		wantErr   bool
	}{
		{name: "valid", firstName: "Jane", lastName: "Smith", street: "1 Oak Ave", city: "Lincoln"},
		{name: "missing first name", firstName: "  ", lastName: "Smith", street: "1 Oak Ave", city: "Lincoln", wantErr: true},
		{name: "missing last name", firstName: "Jane", lastName: "", street: "1 Oak Ave", city: "Lincoln", wantErr: true},
		{name: "missing street", firstName: "Jane", lastName: "Smith", street: "", city: "Lincoln", wantErr: true},
		{name: "missing city", firstName: "Jane", lastName: "Smith", street: "1 Oak Ave", city: " ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRespondent(tt.firstName, "", tt.lastName, "", tt.street, tt.city, "NE", "68508")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, r.CaseID())
			assert.False(t, r.CreatedAt().IsZero())
		})
	}
}

func TestRespondent_BindToCase(t *testing.T) {
	r, err := NewRespondent("Jane", "", "Smith", "", "1 Oak Ave", "Lincoln", "NE", "68508")
	require.NoError(t, err)

	assert.Error(t, r.BindToCase(0))

	require.NoError(t, r.BindToCase(12))
	assert.Equal(t, uint(12), r.CaseID())

	assert.Error(t, r.BindToCase(13), "rebinding is not allowed")
	assert.Equal(t, uint(12), r.CaseID())
}

func TestRespondent_FullName(t *testing.T) {
	tests := []struct {
		name       string
		firstName  string
		middleName string
		lastName   string
		suffix     string
		want       string
	}{
		{name: "first and last only", firstName: "Jane", lastName: "Smith", want: "Jane Smith"},
		{name: "all parts", firstName: "John", middleName: "Q", lastName: "Public", suffix: "Jr", want: "John Q Public Jr"},
		{name: "suffix without middle", firstName: "Ann", lastName: "Lee", suffix: "III", want: "Ann Lee III"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRespondent(tt.firstName, tt.middleName, tt.lastName, tt.suffix, "1 Oak Ave", "Lincoln", "NE", "68508")
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.FullName())
		})
	}
}

func TestNewRespondent_TrimsFields(t *testing.T) {
	r, err := NewRespondent(" Jane ", " Q ", " Smith ", " Jr ", " 1 Oak Ave ", " Lincoln ", " NE ", " 68508 ")
	require.NoError(t, err)

	assert.Equal(t, "Jane", r.FirstName())
	assert.Equal(t, "Q", r.MiddleName())
	assert.Equal(t, "Smith", r.LastName())
	assert.Equal(t, "Jr", r.Suffix())
	assert.Equal(t, "1 Oak Ave", r.Street())
	assert.Equal(t, "Lincoln", r.City())
	assert.Equal(t, "NE", r.State())
	assert.Equal(t, "68508", r.PostalCode())
}
