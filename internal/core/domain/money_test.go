package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain integer", "2", 2},
		{"decimal", "19.90", 19.9},
		{"surrounding whitespace", "  7.5 ", 7.5},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"non-numeric", "abc", 0},
		{"trailing garbage", "12kr", 0},
		{"comma decimal separator", "12,5", 0},
		{"nan literal", "NaN", 0},
		{"infinity literal", "Inf", 0},
		{"negative passes through", "-3", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceNumber(tt.raw))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "25.00", FormatAmount(25))
	assert.Equal(t, "5.00", FormatAmount(5.0000001))
	assert.Equal(t, "19.90", FormatAmount(19.899999999))
	// Half-up at the second decimal.
	assert.Equal(t, "0.13", FormatAmount(0.125))
	assert.Equal(t, "1.01", FormatAmount(1.005000001))
}
