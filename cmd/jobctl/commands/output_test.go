package commands

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "$0", FormatSalary(0))
	assert.Equal(t, "$95,000", FormatSalary(95000))
	assert.Equal(t, "$1,250,000", FormatSalary(1250000))
}

func TestSalaryColor(t *testing.T) {
	tests := []struct {
		salary int
		want   pterm.Color
	}{
		{0, pterm.FgRed},
		{99999, pterm.FgRed},
		{100000, pterm.FgYellow},
		{299999, pterm.FgYellow},
		{300000, pterm.FgLightGreen},
		{400000, pterm.FgGreen},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, salaryColor(tt.salary), "salary %d", tt.salary)
	}
}

func TestColorizeSalary(t *testing.T) {
	salary := 150000
	assert.Contains(t, ColorizeSalary(&salary), "$150,000")
	assert.Contains(t, ColorizeSalary(nil), notAvailable)
}

func TestFormatEquity(t *testing.T) {
	tests := []struct {
		name   string
		equity *float64
		want   string
	}{
		{"nil", nil, notAvailable},
		{"zero", ptr(0.0), "0%"},
		{"fraction", ptr(0.076), "7.6%"},
		{"whole", ptr(1.0), "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEquity(tt.equity))
		})
	}
}
