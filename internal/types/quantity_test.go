package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuantityInRange(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"0", true},
		{"95", true},
		{"12.5", true},
		{"22.000000000100", true},
		{"1000000000", true},
		{"1e9", true},
		{"-1000000000", true},
		{"1000000000.01", false},
		{"2e9", false},
		{"1e10", false},
		{"1e50000000", false},
		{"-1e50000000", false},
		{"1e-50000000", false},
		{"0.000000000000000001", true},
		{"0.0000000000000000001", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuantityInRange(decimal.RequireFromString(tt.value)))
		})
	}
}
