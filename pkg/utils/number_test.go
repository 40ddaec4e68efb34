package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.2, RoundWithOneDecimalPlace(1.24))
	assert.Equal(t, 1.3, RoundWithOneDecimalPlace(1.25))
	assert.Equal(t, -1.2, RoundWithOneDecimalPlace(-1.24))
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.236))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 0.5, SafeRatio(1, 2))
	assert.Equal(t, 0.0, SafeRatio(10, 0))
	assert.Equal(t, 0.0, SafeRatio(0, 0))
}
