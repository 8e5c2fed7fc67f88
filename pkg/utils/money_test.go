package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatSoles(t *testing.T) {
	assert.Equal(t, "S/ 1,234.56", FormatSoles(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "S/ 44,000.00", FormatSoles(decimal.NewFromInt(44000)))
	assert.Equal(t, "S/ 0.00", FormatSoles(decimal.Zero))
	// Rounds half up at the cent.
	assert.Equal(t, "S/ 1,388.89", FormatSoles(decimal.NewFromFloat(1388.888)))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "500,000.00", FormatAmount(500000))
	assert.Equal(t, "15.00", FormatAmount(15))
}
