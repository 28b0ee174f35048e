package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHandle(t *testing.T) {
	v := GetValidator()

	type req struct {
		Handle string `json:"handle" validate:"handle"`
	}

	valid := []string{"", "c1", "anderson-arias-morrow", "abc123"}
	for _, h := range valid {
		assert.NoError(t, v.ValidateStruct(req{Handle: h}), "handle %q", h)
	}

	invalid := []string{"Upper", "has space", "-leading", "trailing-", "double--dash", "under_score"}
	for _, h := range invalid {
		assert.Error(t, v.ValidateStruct(req{Handle: h}), "handle %q", h)
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non-validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", errs["error"])
	})

	t.Run("messages per tag", func(t *testing.T) {
		err := GetValidator().ValidateStruct(CreateJobRequest{
			Title:         "",
			Salary:        intPtr(-1),
			Equity:        floatPtr(2),
			CompanyHandle: "this-handle-is-far-too-long-for-the-column",
		})

		errs := FormatValidationError(err)
		assert.Equal(t, "This field is required", errs["title"])
		assert.Equal(t, "Must be at least 0", errs["salary"])
		assert.Equal(t, "Must be at most 1", errs["equity"])
		assert.Equal(t, "Must be at most 25 characters", errs["companyHandle"])
	})
}

func TestUpdateJobRequest_Validation(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(UpdateJobRequest{}))
	assert.NoError(t, v.ValidateStruct(UpdateJobRequest{Salary: intPtr(0), Equity: floatPtr(0)}))
	assert.NoError(t, v.ValidateStruct(UpdateJobRequest{Equity: floatPtr(1)}))
	assert.Error(t, v.ValidateStruct(UpdateJobRequest{Title: strPtr("")}))
	assert.Error(t, v.ValidateStruct(UpdateJobRequest{Equity: floatPtr(-0.1)}))
}
