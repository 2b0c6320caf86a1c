package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type createStrainForm struct {
	Name     string `json:"name" validate:"required,max=120"`
	Genetics string `json:"genetics" validate:"required,genetics"`
}

func TestValidator_CustomRules(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		form      createStrainForm
		expectErr bool
		errField  string
	}{
		{
			name: "valid",
			form: createStrainForm{Name: "Northern Lights", Genetics: "indica"},
		},
		{
			name:      "missing name",
			form:      createStrainForm{Genetics: "indica"},
			expectErr: true,
			errField:  "name",
		},
		{
			name:      "unknown genetics",
			form:      createStrainForm{Name: "Mystery", Genetics: "ruderalis"},
			expectErr: true,
			errField:  "genetics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			verr, ok := err.(*ValidationError)
			assert.True(t, ok)
			assert.Contains(t, verr.Errors, tt.errField)
		})
	}
}

func TestValidator_SlugRule(t *testing.T) {
	v := New()

	type form struct {
		Slug string `json:"slug" validate:"required,slug"`
	}

	assert.NoError(t, v.Validate(form{Slug: "green-leaf"}))
	assert.Error(t, v.Validate(form{Slug: "Green Leaf"}))
	assert.Error(t, v.Validate(form{Slug: "x"}))
}
