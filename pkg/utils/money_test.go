package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected float64
	}{
		{
			name:     "valor com símbolo de rupia e separador de milhar",
			value:    "₹1,180.00",
			expected: 1180,
		},
		{
			name:     "valor com código de moeda",
			value:    "INR 500",
			expected: 500,
		},
		{
			name:     "valor numérico simples",
			value:    "42.50",
			expected: 42.5,
		},
		{
			name:     "valor negativo de estorno",
			value:    "-₹118.00",
			expected: -118,
		},
		{
			name:     "valor com espaços ao redor",
			value:    "  1,000.25  ",
			expected: 1000.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseMoney(tt.value)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, amount, 1e-9)
		})
	}
}

func TestParseMoney_NullMarkers(t *testing.T) {
	for _, marker := range []string{"", "-", "na", "N/A", "NaN", "null", "  "} {
		t.Run("marcador "+marker, func(t *testing.T) {
			amount, err := ParseMoney(marker)
			require.NoError(t, err)
			assert.Zero(t, amount)
		})
	}
}

func TestParseMoney_Unparsable(t *testing.T) {
	for _, value := range []string{"abc", "12abc", "₹₹--", "1.2.3"} {
		t.Run("valor "+value, func(t *testing.T) {
			amount, err := ParseMoney(value)
			assert.ErrorIs(t, err, ErrUnparsableAmount)
			assert.Zero(t, amount)
		})
	}
}
