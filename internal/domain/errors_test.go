package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError(EntityJob, 42)

	assert.Equal(t, "job not found: 42", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrNoUpdateFields))

	wrapped := fmt.Errorf("failed to get job: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))

	var nf *NotFoundError
	if assert.True(t, errors.As(wrapped, &nf)) {
		assert.Equal(t, EntityJob, nf.Entity)
		assert.Equal(t, 42, nf.ID)
	}
}

func TestJobFilter_IsEmpty(t *testing.T) {
	yes, no := true, false
	minSalary := 1000
	title := "eng"

	assert.True(t, JobFilter{}.IsEmpty())
	assert.True(t, JobFilter{HasEquity: &no}.IsEmpty(), "hasEquity=false imposes no constraint")
	assert.False(t, JobFilter{HasEquity: &yes}.IsEmpty())
	assert.False(t, JobFilter{MinSalary: &minSalary}.IsEmpty())
	assert.False(t, JobFilter{Title: &title}.IsEmpty())
}

func TestJobUpdate_IsEmpty(t *testing.T) {
	salary := 5000

	assert.True(t, JobUpdate{}.IsEmpty())
	assert.False(t, JobUpdate{Salary: &salary}.IsEmpty())
}
