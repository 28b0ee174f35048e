package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"parses valid integer", "100", 100},
		{"parses negative integers", "-10", -10},
		{"parses zero", "0", 0},
		{"returns default for invalid integer", "not-a-number", 42},
		{"returns default for float values", "42.5", 42},
		{"returns default for empty string", "", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"parses minutes", "10m", 10 * time.Minute},
		{"parses complex duration", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"parses milliseconds", "500ms", 500 * time.Millisecond},
		{"returns default for invalid duration", "not-a-duration", 5 * time.Minute},
		{"returns default for plain numbers without unit", "100", 5 * time.Minute},
		{"returns default for empty string", "", 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, splitList("a, b"))
}
